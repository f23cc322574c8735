package usecase

import (
	"context"
	"testing"

	"newsroom/internal/entity"
	"newsroom/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newFeedUseCase(
	articleRepo *MockArticleRepository,
	publisherRepo *MockPublisherRepository,
	subscriptionRepo *MockSubscriptionRepository,
	notificationRepo *MockNotificationRepository,
) FeedUseCase {
	return NewFeedUseCase(articleRepo, publisherRepo, subscriptionRepo, notificationRepo, nil, logger.New())
}

func TestDashboard_JournalistSeesOwnArticlesAndNotices(t *testing.T) {
	articleRepo := new(MockArticleRepository)
	notificationRepo := new(MockNotificationRepository)

	articleRepo.On("ListByAuthor", "j1").Return([]*entity.Article{
		{ID: "a1", CreatedBy: "j1", Approved: false},
		{ID: "a2", CreatedBy: "j1", Approved: true},
	}, nil)
	notificationRepo.On("ListByRecipient", "j1", 20, 0).Return([]*entity.Notification{
		{ID: "n1", RecipientID: "j1", Message: "bob subscribed to you"},
	}, nil)

	uc := newFeedUseCase(articleRepo, new(MockPublisherRepository), new(MockSubscriptionRepository), notificationRepo)
	dash, err := uc.Dashboard(context.Background(), entity.Actor{ID: "j1", Role: entity.RoleJournalist})

	assert.NoError(t, err)
	assert.Equal(t, entity.RoleJournalist, dash.Role)
	assert.Len(t, dash.Articles, 2)
	assert.Len(t, dash.Notifications, 1)
}

func TestDashboard_EditorSeesPendingQueueAndPublishers(t *testing.T) {
	articleRepo := new(MockArticleRepository)
	publisherRepo := new(MockPublisherRepository)
	notificationRepo := new(MockNotificationRepository)

	articleRepo.On("ListPending").Return([]*entity.Article{{ID: "a1", Approved: false}}, nil)
	publisherRepo.On("List").Return([]*entity.Publisher{{ID: "p1", Name: "Daily"}}, nil)
	notificationRepo.On("ListByRecipient", "e1", 20, 0).Return([]*entity.Notification{}, nil)

	uc := newFeedUseCase(articleRepo, publisherRepo, new(MockSubscriptionRepository), notificationRepo)
	dash, err := uc.Dashboard(context.Background(), entity.Actor{ID: "e1", Role: entity.RoleEditor})

	assert.NoError(t, err)
	assert.Len(t, dash.Articles, 1)
	assert.Len(t, dash.Publishers, 1)
}

func TestDashboard_ReaderNarrowedBySubscriptions(t *testing.T) {
	articleRepo := new(MockArticleRepository)
	subscriptionRepo := new(MockSubscriptionRepository)
	notificationRepo := new(MockNotificationRepository)

	subscriptionRepo.On("ListByReader", "r1").Return([]*entity.Subscription{
		{ReaderID: "r1", JournalistID: "j1"},
		{ReaderID: "r1", PublisherID: "p1"},
	}, nil)
	articleRepo.On("ListApprovedFor", []string{"j1"}, []string{"p1"}).Return([]*entity.Article{
		{ID: "a1", Approved: true},
	}, nil)
	notificationRepo.On("ListByRecipient", "r1", 20, 0).Return([]*entity.Notification{}, nil)

	uc := newFeedUseCase(articleRepo, new(MockPublisherRepository), subscriptionRepo, notificationRepo)
	dash, err := uc.Dashboard(context.Background(), entity.Actor{ID: "r1", Role: entity.RoleReader})

	assert.NoError(t, err)
	assert.Len(t, dash.Articles, 1)
	articleRepo.AssertNotCalled(t, "ListApproved")
}

func TestDashboard_ReaderWithoutSubscriptionsSeesEverythingApproved(t *testing.T) {
	articleRepo := new(MockArticleRepository)
	subscriptionRepo := new(MockSubscriptionRepository)
	notificationRepo := new(MockNotificationRepository)

	subscriptionRepo.On("ListByReader", "r1").Return([]*entity.Subscription{}, nil)
	articleRepo.On("ListApproved").Return([]*entity.Article{
		{ID: "a1", Approved: true},
		{ID: "a2", Approved: true},
	}, nil)
	notificationRepo.On("ListByRecipient", "r1", 20, 0).Return([]*entity.Notification{}, nil)

	uc := newFeedUseCase(articleRepo, new(MockPublisherRepository), subscriptionRepo, notificationRepo)
	dash, err := uc.Dashboard(context.Background(), entity.Actor{ID: "r1", Role: entity.RoleReader})

	assert.NoError(t, err)
	assert.Len(t, dash.Articles, 2)
	articleRepo.AssertNotCalled(t, "ListApprovedFor", mock.Anything, mock.Anything)
}
