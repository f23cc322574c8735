package entity

import "time"

// Notification is immutable once created; the fan-out paths are the only
// writers.
type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
