package entity

import "time"

type Newsletter struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	AuthorID    string    `json:"author_id"`
	PublisherID string    `json:"publisher_id"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
}
