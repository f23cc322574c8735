package usecase

import (
	"errors"
	"fmt"

	"newsroom/internal/entity"
	"newsroom/internal/repo/persistent"
	"newsroom/pkg/logger"
	"newsroom/pkg/queue"

	"gorm.io/gorm"
)

type SubscriptionUseCase interface {
	// Subscribe creates the edge if absent. The created flag is false when
	// an equal edge already existed; that case is informational, not an
	// error.
	Subscribe(actor entity.Actor, kind entity.TargetKind, targetID string) (*entity.Subscription, bool, error)
	// Unsubscribe removes the edge and reports how many rows went away.
	// Removing an edge that does not exist is a no-op, not an error.
	Unsubscribe(actor entity.Actor, kind entity.TargetKind, targetID string) (int64, error)
	List(actor entity.Actor) ([]*entity.Subscription, error)
}

type subscriptionUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	userRepo         persistent.UserRepository
	publisherRepo    persistent.PublisherRepository
	queueClient      *queue.Client
	logger           *logger.Logger
}

func NewSubscriptionUseCase(
	subscriptionRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	publisherRepo persistent.PublisherRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		publisherRepo:    publisherRepo,
		queueClient:      queueClient,
		logger:           logger,
	}
}

func (uc *subscriptionUseCase) Subscribe(actor entity.Actor, kind entity.TargetKind, targetID string) (*entity.Subscription, bool, error) {
	if !Allowed(actor, ActionSubscribe, nil) {
		return nil, false, ErrForbidden
	}
	if !kind.Valid() {
		return nil, false, fmt.Errorf("%w: unknown subscription target %q", ErrValidation, kind)
	}
	if targetID == "" {
		return nil, false, fmt.Errorf("%w: target id is required", ErrValidation)
	}

	sub := &entity.Subscription{ReaderID: actor.ID}
	switch kind {
	case entity.TargetJournalist:
		target, err := uc.userRepo.GetByID(targetID)
		if err != nil {
			return nil, false, notFound(err)
		}
		// Subscribing to a reader or an editor is treated the same as a
		// missing target.
		if target.Role != entity.RoleJournalist {
			return nil, false, fmt.Errorf("%w: journalist %s", ErrNotFound, targetID)
		}
		sub.JournalistID = target.ID
	case entity.TargetPublisher:
		publisher, err := uc.publisherRepo.GetByID(targetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, fmt.Errorf("%w: publisher %s", ErrNotFound, targetID)
			}
			return nil, false, err
		}
		sub.PublisherID = publisher.ID
	}

	created, err := uc.subscriptionRepo.Upsert(sub)
	if err != nil {
		uc.logger.Error("Failed to subscribe %s to %s %s: %v", actor.ID, kind, targetID, err)
		return nil, false, fmt.Errorf("failed to subscribe")
	}

	if created && kind == entity.TargetJournalist && uc.queueClient != nil {
		event := map[string]interface{}{
			"reader_id":     sub.ReaderID,
			"journalist_id": sub.JournalistID,
		}
		go func() {
			if err := uc.queueClient.PublishSubscriptionEvent(event); err != nil {
				uc.logger.Warn("Failed to publish subscription event: %v", err)
			}
		}()
	}

	return sub, created, nil
}

func (uc *subscriptionUseCase) Unsubscribe(actor entity.Actor, kind entity.TargetKind, targetID string) (int64, error) {
	if !Allowed(actor, ActionUnsubscribe, nil) {
		return 0, ErrForbidden
	}
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: unknown subscription target %q", ErrValidation, kind)
	}

	deleted, err := uc.subscriptionRepo.Delete(actor.ID, kind, targetID)
	if err != nil {
		uc.logger.Error("Failed to unsubscribe %s from %s %s: %v", actor.ID, kind, targetID, err)
		return 0, fmt.Errorf("failed to unsubscribe")
	}
	return deleted, nil
}

func (uc *subscriptionUseCase) List(actor entity.Actor) ([]*entity.Subscription, error) {
	return uc.subscriptionRepo.ListByReader(actor.ID)
}
