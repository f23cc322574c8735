package usecase

import (
	"errors"
	"fmt"

	"newsroom/internal/entity"
	"newsroom/internal/repo/persistent"
	"newsroom/pkg/logger"

	"gorm.io/gorm"
)

type PublisherUseCase interface {
	Create(actor entity.Actor, name string) (*entity.Publisher, error)
	List() ([]*entity.Publisher, error)
}

type publisherUseCase struct {
	publisherRepo persistent.PublisherRepository
	logger        *logger.Logger
}

func NewPublisherUseCase(publisherRepo persistent.PublisherRepository, logger *logger.Logger) PublisherUseCase {
	return &publisherUseCase{
		publisherRepo: publisherRepo,
		logger:        logger,
	}
}

func (uc *publisherUseCase) Create(actor entity.Actor, name string) (*entity.Publisher, error) {
	if !Allowed(actor, ActionManagePublishers, nil) {
		return nil, ErrForbidden
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	if _, err := uc.publisherRepo.GetByName(name); err == nil {
		return nil, fmt.Errorf("%w: publisher %q already exists", ErrValidation, name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	publisher := &entity.Publisher{
		Name:    name,
		OwnerID: actor.ID,
	}
	if err := uc.publisherRepo.Create(publisher); err != nil {
		uc.logger.Error("Failed to create publisher: %v", err)
		return nil, fmt.Errorf("failed to create publisher")
	}
	return publisher, nil
}

func (uc *publisherUseCase) List() ([]*entity.Publisher, error) {
	return uc.publisherRepo.List()
}
