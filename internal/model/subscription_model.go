package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionModel holds one follow edge. The partial unique indexes on
// (reader_id, journalist_id) and (reader_id, publisher_id) live in the
// migrations together with a CHECK that exactly one target is set.
type SubscriptionModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	ReaderID     string    `gorm:"type:uuid;not null;index" json:"reader_id"`
	JournalistID *string   `gorm:"type:uuid;index" json:"journalist_id"`
	PublisherID  *string   `gorm:"type:uuid;index" json:"publisher_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
