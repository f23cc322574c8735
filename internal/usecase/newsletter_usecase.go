package usecase

import (
	"errors"
	"fmt"

	"newsroom/internal/entity"
	"newsroom/internal/repo/persistent"
	"newsroom/pkg/logger"

	"gorm.io/gorm"
)

// NewsletterNotifier is the slice of the notification use case the
// newsletter flow needs.
type NewsletterNotifier interface {
	NotifyNewsletterApproved(newsletter *entity.Newsletter) (int, error)
}

type NewsletterUseCase interface {
	Create(actor entity.Actor, title, content, publisherID string) (*entity.Newsletter, error)
	Get(actor entity.Actor, id string) (*entity.Newsletter, error)
	// Approve marks the newsletter approved and dispatches it by email to
	// the publisher's followers. A dispatch failure surfaces to the caller;
	// the approval itself is already persisted at that point.
	Approve(actor entity.Actor, id string) (*entity.Newsletter, int, error)
}

type newsletterUseCase struct {
	newsletterRepo persistent.NewsletterRepository
	publisherRepo  persistent.PublisherRepository
	notifier       NewsletterNotifier
	logger         *logger.Logger
}

func NewNewsletterUseCase(
	newsletterRepo persistent.NewsletterRepository,
	publisherRepo persistent.PublisherRepository,
	notifier NewsletterNotifier,
	logger *logger.Logger,
) NewsletterUseCase {
	return &newsletterUseCase{
		newsletterRepo: newsletterRepo,
		publisherRepo:  publisherRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *newsletterUseCase) Create(actor entity.Actor, title, content, publisherID string) (*entity.Newsletter, error) {
	if !Allowed(actor, ActionCreateNewsletter, nil) {
		return nil, ErrForbidden
	}
	if title == "" || content == "" || publisherID == "" {
		return nil, fmt.Errorf("%w: title, content and publisher are required", ErrValidation)
	}

	if _, err := uc.publisherRepo.GetByID(publisherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: publisher %s", ErrNotFound, publisherID)
		}
		return nil, err
	}

	newsletter := &entity.Newsletter{
		Title:       title,
		Content:     content,
		AuthorID:    actor.ID,
		PublisherID: publisherID,
		Approved:    false,
	}
	if err := uc.newsletterRepo.Create(newsletter); err != nil {
		uc.logger.Error("Failed to create newsletter: %v", err)
		return nil, fmt.Errorf("failed to create newsletter")
	}
	return newsletter, nil
}

func (uc *newsletterUseCase) Get(actor entity.Actor, id string) (*entity.Newsletter, error) {
	newsletter, err := uc.newsletterRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	if !newsletter.Approved && actor.Role == entity.RoleReader {
		return nil, ErrForbidden
	}
	return newsletter, nil
}

func (uc *newsletterUseCase) Approve(actor entity.Actor, id string) (*entity.Newsletter, int, error) {
	if !Allowed(actor, ActionApproveNewsletter, nil) {
		return nil, 0, ErrForbidden
	}
	newsletter, err := uc.newsletterRepo.GetByID(id)
	if err != nil {
		return nil, 0, notFound(err)
	}
	if newsletter.Approved {
		return newsletter, 0, nil
	}

	newsletter.Approved = true
	if err := uc.newsletterRepo.Update(newsletter); err != nil {
		uc.logger.Error("Failed to approve newsletter %s: %v", id, err)
		return nil, 0, fmt.Errorf("failed to approve newsletter")
	}

	sent, err := uc.notifier.NotifyNewsletterApproved(newsletter)
	if err != nil {
		return newsletter, 0, fmt.Errorf("newsletter approved but dispatch failed: %w", err)
	}
	uc.logger.Info("Newsletter %s dispatched to %d recipients", id, sent)
	return newsletter, sent, nil
}
