package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PublisherModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	OwnerID   *string   `gorm:"type:uuid" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PublisherModel) TableName() string {
	return "publishers"
}

func (p *PublisherModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
