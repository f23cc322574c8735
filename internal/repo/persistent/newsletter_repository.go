package persistent

import (
	"newsroom/internal/entity"
	"newsroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsletterRepository interface {
	Create(newsletter *entity.Newsletter) error
	GetByID(id string) (*entity.Newsletter, error)
	Update(newsletter *entity.Newsletter) error
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(newsletter *entity.Newsletter) error {
	newsletterModel := ToNewsletterModel(newsletter)
	if newsletterModel.ID == "" {
		newsletterModel.ID = uuid.New().String()
	}
	if err := r.db.Create(newsletterModel).Error; err != nil {
		return err
	}
	*newsletter = *ToNewsletterEntity(newsletterModel)
	return nil
}

func (r *newsletterRepository) GetByID(id string) (*entity.Newsletter, error) {
	var newsletterModel model.NewsletterModel
	if err := r.db.Where("id = ?", id).First(&newsletterModel).Error; err != nil {
		return nil, err
	}
	return ToNewsletterEntity(&newsletterModel), nil
}

func (r *newsletterRepository) Update(newsletter *entity.Newsletter) error {
	return r.db.Save(ToNewsletterModel(newsletter)).Error
}
