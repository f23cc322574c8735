package http

import (
	"context"
	"io"

	"newsroom/internal/entity"
	"newsroom/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockArticleUseCase is a mock implementation of usecase.ArticleUseCase
type MockArticleUseCase struct {
	mock.Mock
}

func (m *MockArticleUseCase) Create(actor entity.Actor, title, content, publisherID string) (*entity.Article, error) {
	args := m.Called(actor, title, content, publisherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) Get(actor entity.Actor, id string) (*entity.Article, error) {
	args := m.Called(actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) Update(actor entity.Actor, id, title, content string) (*entity.Article, error) {
	args := m.Called(actor, id, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) Delete(actor entity.Actor, id string) error {
	args := m.Called(actor, id)
	return args.Error(0)
}

func (m *MockArticleUseCase) Approve(actor entity.Actor, id string) (*entity.Article, error) {
	args := m.Called(actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) UploadCover(actor entity.Actor, id string, file io.Reader, contentType string) (*entity.Article, error) {
	args := m.Called(actor, id, file, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

var _ usecase.ArticleUseCase = (*MockArticleUseCase)(nil)

// MockSubscriptionUseCase is a mock implementation of usecase.SubscriptionUseCase
type MockSubscriptionUseCase struct {
	mock.Mock
}

func (m *MockSubscriptionUseCase) Subscribe(actor entity.Actor, kind entity.TargetKind, targetID string) (*entity.Subscription, bool, error) {
	args := m.Called(actor, kind, targetID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.Subscription), args.Bool(1), args.Error(2)
}

func (m *MockSubscriptionUseCase) Unsubscribe(actor entity.Actor, kind entity.TargetKind, targetID string) (int64, error) {
	args := m.Called(actor, kind, targetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionUseCase) List(actor entity.Actor) ([]*entity.Subscription, error) {
	args := m.Called(actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subscription), args.Error(1)
}

var _ usecase.SubscriptionUseCase = (*MockSubscriptionUseCase)(nil)

// MockFeedUseCase is a mock implementation of usecase.FeedUseCase
type MockFeedUseCase struct {
	mock.Mock
}

func (m *MockFeedUseCase) Dashboard(ctx context.Context, actor entity.Actor) (*usecase.Dashboard, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Dashboard), args.Error(1)
}

var _ usecase.FeedUseCase = (*MockFeedUseCase)(nil)

// MockNewsletterUseCase is a mock implementation of usecase.NewsletterUseCase
type MockNewsletterUseCase struct {
	mock.Mock
}

func (m *MockNewsletterUseCase) Create(actor entity.Actor, title, content, publisherID string) (*entity.Newsletter, error) {
	args := m.Called(actor, title, content, publisherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Newsletter), args.Error(1)
}

func (m *MockNewsletterUseCase) Get(actor entity.Actor, id string) (*entity.Newsletter, error) {
	args := m.Called(actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Newsletter), args.Error(1)
}

func (m *MockNewsletterUseCase) Approve(actor entity.Actor, id string) (*entity.Newsletter, int, error) {
	args := m.Called(actor, id)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(*entity.Newsletter), args.Int(1), args.Error(2)
}

var _ usecase.NewsletterUseCase = (*MockNewsletterUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asActor(id string, role entity.Role, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Set("user_role", string(role))
		handler(c)
	}
}
