package persistent

import (
	"newsroom/internal/entity"
	"newsroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PublisherRepository interface {
	Create(publisher *entity.Publisher) error
	GetByID(id string) (*entity.Publisher, error)
	GetByName(name string) (*entity.Publisher, error)
	List() ([]*entity.Publisher, error)
}

type publisherRepository struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) PublisherRepository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) Create(publisher *entity.Publisher) error {
	publisherModel := ToPublisherModel(publisher)
	if publisherModel.ID == "" {
		publisherModel.ID = uuid.New().String()
	}
	if err := r.db.Create(publisherModel).Error; err != nil {
		return err
	}
	*publisher = *ToPublisherEntity(publisherModel)
	return nil
}

func (r *publisherRepository) GetByID(id string) (*entity.Publisher, error) {
	var publisherModel model.PublisherModel
	if err := r.db.Where("id = ?", id).First(&publisherModel).Error; err != nil {
		return nil, err
	}
	return ToPublisherEntity(&publisherModel), nil
}

func (r *publisherRepository) GetByName(name string) (*entity.Publisher, error) {
	var publisherModel model.PublisherModel
	if err := r.db.Where("name = ?", name).First(&publisherModel).Error; err != nil {
		return nil, err
	}
	return ToPublisherEntity(&publisherModel), nil
}

func (r *publisherRepository) List() ([]*entity.Publisher, error) {
	var publisherModels []model.PublisherModel
	if err := r.db.Order("name ASC").Find(&publisherModels).Error; err != nil {
		return nil, err
	}

	publishers := make([]*entity.Publisher, len(publisherModels))
	for i := range publisherModels {
		publishers[i] = ToPublisherEntity(&publisherModels[i])
	}
	return publishers, nil
}
