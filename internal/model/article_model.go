package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Approved    bool      `gorm:"default:false;index" json:"approved"`
	CreatedBy   string    `gorm:"type:uuid;not null;index" json:"created_by"`
	PublisherID *string   `gorm:"type:uuid;index" json:"publisher_id"`
	CoverURL    string    `gorm:"type:varchar(500)" json:"cover_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

func (a *ArticleModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
