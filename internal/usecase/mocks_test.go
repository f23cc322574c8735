package usecase

import (
	"io"

	"newsroom/internal/entity"
	"newsroom/internal/repo/persistent"
	"newsroom/pkg/mailer"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockPublisherRepository is a mock implementation of persistent.PublisherRepository
type MockPublisherRepository struct {
	mock.Mock
}

func (m *MockPublisherRepository) Create(publisher *entity.Publisher) error {
	args := m.Called(publisher)
	return args.Error(0)
}

func (m *MockPublisherRepository) GetByID(id string) (*entity.Publisher, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Publisher), args.Error(1)
}

func (m *MockPublisherRepository) GetByName(name string) (*entity.Publisher, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Publisher), args.Error(1)
}

func (m *MockPublisherRepository) List() ([]*entity.Publisher, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Publisher), args.Error(1)
}

var _ persistent.PublisherRepository = (*MockPublisherRepository)(nil)

// MockArticleRepository is a mock implementation of persistent.ArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(article *entity.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) GetByID(id string) (*entity.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleRepository) Update(article *entity.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockArticleRepository) ListByAuthor(authorID string) ([]*entity.Article, error) {
	args := m.Called(authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

func (m *MockArticleRepository) ListPending() ([]*entity.Article, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

func (m *MockArticleRepository) ListApproved() ([]*entity.Article, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

func (m *MockArticleRepository) ListApprovedFor(journalistIDs, publisherIDs []string) ([]*entity.Article, error) {
	args := m.Called(journalistIDs, publisherIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

var _ persistent.ArticleRepository = (*MockArticleRepository)(nil)

// MockSubscriptionRepository is a mock implementation of persistent.SubscriptionRepository
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Upsert(sub *entity.Subscription) (bool, error) {
	args := m.Called(sub)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) Delete(readerID string, kind entity.TargetKind, targetID string) (int64, error) {
	args := m.Called(readerID, kind, targetID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) ListByReader(readerID string) ([]*entity.Subscription, error) {
	args := m.Called(readerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListJournalistFollowers(journalistID string) ([]*entity.Subscription, error) {
	args := m.Called(journalistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListPublisherFollowers(publisherID string) ([]*entity.Subscription, error) {
	args := m.Called(publisherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListPublisherFollowerEmails(publisherID string) ([]string, error) {
	args := m.Called(publisherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ persistent.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

// MockNewsletterRepository is a mock implementation of persistent.NewsletterRepository
type MockNewsletterRepository struct {
	mock.Mock
}

func (m *MockNewsletterRepository) Create(newsletter *entity.Newsletter) error {
	args := m.Called(newsletter)
	return args.Error(0)
}

func (m *MockNewsletterRepository) GetByID(id string) (*entity.Newsletter, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Newsletter), args.Error(1)
}

func (m *MockNewsletterRepository) Update(newsletter *entity.Newsletter) error {
	args := m.Called(newsletter)
	return args.Error(0)
}

var _ persistent.NewsletterRepository = (*MockNewsletterRepository)(nil)

// MockNotificationRepository is a mock implementation of persistent.NotificationRepository
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(notification *entity.Notification) error {
	args := m.Called(notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListByRecipient(recipientID string, limit, offset int) ([]*entity.Notification, error) {
	args := m.Called(recipientID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountByRecipient(recipientID string) (int64, error) {
	args := m.Called(recipientID)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.NotificationRepository = (*MockNotificationRepository)(nil)

// MockMailSender is a mock implementation of mailer.Sender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(subject, body string, recipients []string) error {
	args := m.Called(subject, body, recipients)
	return args.Error(0)
}

var _ mailer.Sender = (*MockMailSender)(nil)

// MockFanout is a mock implementation of ArticleFanout
type MockFanout struct {
	mock.Mock
}

func (m *MockFanout) FanOutNewArticle(article *entity.Article) (int, error) {
	args := m.Called(article)
	return args.Int(0), args.Error(1)
}

var _ ArticleFanout = (*MockFanout)(nil)

// MockNotifier is a mock implementation of NewsletterNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyNewsletterApproved(newsletter *entity.Newsletter) (int, error) {
	args := m.Called(newsletter)
	return args.Int(0), args.Error(1)
}

var _ NewsletterNotifier = (*MockNotifier)(nil)

// MockCoverStorage is a mock implementation of CoverStorage
type MockCoverStorage struct {
	mock.Mock
}

func (m *MockCoverStorage) UploadFile(key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockCoverStorage) DeleteFile(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

var _ CoverStorage = (*MockCoverStorage)(nil)
