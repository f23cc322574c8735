package usecase

import (
	"context"
	"encoding/json"
	"time"

	"newsroom/internal/entity"
	"newsroom/internal/repo/persistent"
	"newsroom/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const readerFeedTTL = 60 * time.Second

// Dashboard is the role-shaped landing payload.
type Dashboard struct {
	Role          entity.Role            `json:"role"`
	Articles      []*entity.Article      `json:"articles"`
	Publishers    []*entity.Publisher    `json:"publishers,omitempty"`
	Notifications []*entity.Notification `json:"notifications,omitempty"`
}

type FeedUseCase interface {
	// Dashboard assembles the landing view for the actor's role:
	// journalists see their own articles, editors see the approval queue,
	// readers see approved articles narrowed to their subscriptions (or
	// everything approved when they follow nobody).
	Dashboard(ctx context.Context, actor entity.Actor) (*Dashboard, error)
}

type feedUseCase struct {
	articleRepo      persistent.ArticleRepository
	publisherRepo    persistent.PublisherRepository
	subscriptionRepo persistent.SubscriptionRepository
	notificationRepo persistent.NotificationRepository
	cache            *redis.Client
	logger           *logger.Logger
}

func NewFeedUseCase(
	articleRepo persistent.ArticleRepository,
	publisherRepo persistent.PublisherRepository,
	subscriptionRepo persistent.SubscriptionRepository,
	notificationRepo persistent.NotificationRepository,
	cache *redis.Client,
	logger *logger.Logger,
) FeedUseCase {
	return &feedUseCase{
		articleRepo:      articleRepo,
		publisherRepo:    publisherRepo,
		subscriptionRepo: subscriptionRepo,
		notificationRepo: notificationRepo,
		cache:            cache,
		logger:           logger,
	}
}

func (uc *feedUseCase) Dashboard(ctx context.Context, actor entity.Actor) (*Dashboard, error) {
	var dash *Dashboard
	var err error
	switch actor.Role {
	case entity.RoleJournalist:
		dash, err = uc.journalistDashboard(actor)
	case entity.RoleEditor:
		dash, err = uc.editorDashboard()
	default:
		dash, err = uc.readerDashboard(ctx, actor)
	}
	if err != nil {
		return nil, err
	}

	// Every role sees its own notifications; journalists get subscription
	// notices here too.
	notifications, err := uc.notificationRepo.ListByRecipient(actor.ID, 20, 0)
	if err != nil {
		return nil, err
	}
	dash.Notifications = notifications
	return dash, nil
}

func (uc *feedUseCase) journalistDashboard(actor entity.Actor) (*Dashboard, error) {
	articles, err := uc.articleRepo.ListByAuthor(actor.ID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Role: entity.RoleJournalist, Articles: articles}, nil
}

func (uc *feedUseCase) editorDashboard() (*Dashboard, error) {
	pending, err := uc.articleRepo.ListPending()
	if err != nil {
		return nil, err
	}
	publishers, err := uc.publisherRepo.List()
	if err != nil {
		return nil, err
	}
	return &Dashboard{Role: entity.RoleEditor, Articles: pending, Publishers: publishers}, nil
}

func (uc *feedUseCase) readerDashboard(ctx context.Context, actor entity.Actor) (*Dashboard, error) {
	articles, err := uc.readerFeed(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Role: entity.RoleReader, Articles: articles}, nil
}

func (uc *feedUseCase) readerFeed(ctx context.Context, readerID string) ([]*entity.Article, error) {
	if cached, ok := uc.cachedFeed(ctx, readerID); ok {
		return cached, nil
	}

	subs, err := uc.subscriptionRepo.ListByReader(readerID)
	if err != nil {
		return nil, err
	}

	var articles []*entity.Article
	if len(subs) == 0 {
		articles, err = uc.articleRepo.ListApproved()
	} else {
		var journalistIDs, publisherIDs []string
		for _, sub := range subs {
			if sub.JournalistID != "" {
				journalistIDs = append(journalistIDs, sub.JournalistID)
			}
			if sub.PublisherID != "" {
				publisherIDs = append(publisherIDs, sub.PublisherID)
			}
		}
		articles, err = uc.articleRepo.ListApprovedFor(journalistIDs, publisherIDs)
	}
	if err != nil {
		return nil, err
	}

	uc.storeFeed(ctx, readerID, articles)
	return articles, nil
}

func feedCacheKey(readerID string) string {
	return "feed:reader:" + readerID
}

func (uc *feedUseCase) cachedFeed(ctx context.Context, readerID string) ([]*entity.Article, bool) {
	if uc.cache == nil {
		return nil, false
	}
	raw, err := uc.cache.Get(ctx, feedCacheKey(readerID)).Bytes()
	if err != nil {
		return nil, false
	}
	var articles []*entity.Article
	if err := json.Unmarshal(raw, &articles); err != nil {
		uc.logger.Warn("Dropping corrupt feed cache for %s: %v", readerID, err)
		return nil, false
	}
	return articles, true
}

func (uc *feedUseCase) storeFeed(ctx context.Context, readerID string, articles []*entity.Article) {
	if uc.cache == nil {
		return
	}
	raw, err := json.Marshal(articles)
	if err != nil {
		return
	}
	if err := uc.cache.Set(ctx, feedCacheKey(readerID), raw, readerFeedTTL).Err(); err != nil {
		uc.logger.Warn("Failed to cache feed for %s: %v", readerID, err)
	}
}
