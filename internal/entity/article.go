package entity

import "time"

type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Approved    bool      `json:"approved"`
	CreatedBy   string    `json:"created_by"`
	PublisherID string    `json:"publisher_id,omitempty"`
	CoverURL    string    `json:"cover_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
