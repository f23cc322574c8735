package entity

import "time"

// TargetKind names what a subscription edge points at.
type TargetKind string

const (
	TargetJournalist TargetKind = "journalist"
	TargetPublisher  TargetKind = "publisher"
)

func (k TargetKind) Valid() bool {
	return k == TargetJournalist || k == TargetPublisher
}

// Subscription is a directed edge from a reader to a journalist or a
// publisher. Exactly one of JournalistID/PublisherID is set.
type Subscription struct {
	ID           string    `json:"id"`
	ReaderID     string    `json:"reader_id"`
	JournalistID string    `json:"journalist_id,omitempty"`
	PublisherID  string    `json:"publisher_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
