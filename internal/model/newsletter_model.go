package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsletterModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	AuthorID    string    `gorm:"type:uuid;not null;index" json:"author_id"`
	PublisherID string    `gorm:"type:uuid;not null;index" json:"publisher_id"`
	Approved    bool      `gorm:"default:false" json:"approved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (NewsletterModel) TableName() string {
	return "newsletters"
}

func (n *NewsletterModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
