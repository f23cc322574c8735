package usecase

import (
	"fmt"

	"newsroom/internal/entity"
	"newsroom/internal/repo/persistent"
	"newsroom/pkg/logger"
	"newsroom/pkg/mailer"
)

type NotificationUseCase interface {
	// FanOutNewArticle creates one notification per matching subscription
	// edge. A reader following both the author and the article's publisher
	// receives two notifications. Delivery is best effort: a failed write
	// is logged and skipped, never aborts the batch. Returns the number of
	// notifications actually written.
	FanOutNewArticle(article *entity.Article) (int, error)
	// NotifyNewsletterApproved emails every follower of the newsletter's
	// publisher in a single message. Unlike article fan-out, a send failure
	// surfaces to the caller.
	NotifyNewsletterApproved(newsletter *entity.Newsletter) (int, error)
	HandleSubscriptionEvent(event map[string]interface{}) error
	List(recipientID string, limit, offset int) ([]*entity.Notification, int64, error)
}

type notificationUseCase struct {
	notificationRepo persistent.NotificationRepository
	subscriptionRepo persistent.SubscriptionRepository
	userRepo         persistent.UserRepository
	publisherRepo    persistent.PublisherRepository
	mailSender       mailer.Sender
	logger           *logger.Logger
}

func NewNotificationUseCase(
	notificationRepo persistent.NotificationRepository,
	subscriptionRepo persistent.SubscriptionRepository,
	userRepo persistent.UserRepository,
	publisherRepo persistent.PublisherRepository,
	mailSender mailer.Sender,
	logger *logger.Logger,
) NotificationUseCase {
	return &notificationUseCase{
		notificationRepo: notificationRepo,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		publisherRepo:    publisherRepo,
		mailSender:       mailSender,
		logger:           logger,
	}
}

func (uc *notificationUseCase) FanOutNewArticle(article *entity.Article) (int, error) {
	delivered := 0

	author, err := uc.userRepo.GetByID(article.CreatedBy)
	if err != nil {
		return 0, notFound(err)
	}

	followers, err := uc.subscriptionRepo.ListJournalistFollowers(author.ID)
	if err != nil {
		return 0, err
	}
	authorMessage := fmt.Sprintf("%s uploaded a new article: %s", author.Username, article.Title)
	for _, sub := range followers {
		if err := uc.deliver(sub.ReaderID, authorMessage); err == nil {
			delivered++
		}
	}

	if article.PublisherID != "" {
		publisher, err := uc.publisherRepo.GetByID(article.PublisherID)
		if err != nil {
			uc.logger.Warn("Fan-out: publisher %s not found: %v", article.PublisherID, err)
			return delivered, nil
		}
		followers, err := uc.subscriptionRepo.ListPublisherFollowers(publisher.ID)
		if err != nil {
			uc.logger.Warn("Fan-out: listing followers of publisher %s: %v", publisher.ID, err)
			return delivered, nil
		}
		publisherMessage := fmt.Sprintf("New article under %s: %s", publisher.Name, article.Title)
		for _, sub := range followers {
			if err := uc.deliver(sub.ReaderID, publisherMessage); err == nil {
				delivered++
			}
		}
	}

	return delivered, nil
}

func (uc *notificationUseCase) deliver(recipientID, message string) error {
	notification := &entity.Notification{
		RecipientID: recipientID,
		Message:     message,
	}
	if err := uc.notificationRepo.Create(notification); err != nil {
		uc.logger.Error("Failed to notify %s: %v", recipientID, err)
		return err
	}
	return nil
}

func (uc *notificationUseCase) NotifyNewsletterApproved(newsletter *entity.Newsletter) (int, error) {
	recipients, err := uc.subscriptionRepo.ListPublisherFollowerEmails(newsletter.PublisherID)
	if err != nil {
		return 0, err
	}
	if len(recipients) == 0 {
		return 0, nil
	}

	subject := fmt.Sprintf("New Newsletter: %s", newsletter.Title)
	if err := uc.mailSender.Send(subject, newsletter.Content, recipients); err != nil {
		uc.logger.Error("Failed to send newsletter %s: %v", newsletter.ID, err)
		return 0, err
	}
	return len(recipients), nil
}

func (uc *notificationUseCase) HandleSubscriptionEvent(event map[string]interface{}) error {
	journalistID, _ := event["journalist_id"].(string)
	readerID, _ := event["reader_id"].(string)
	if journalistID == "" || readerID == "" {
		uc.logger.Warn("Dropping malformed subscription event: %v", event)
		return nil
	}

	readerName := "Someone"
	if reader, err := uc.userRepo.GetByID(readerID); err == nil {
		readerName = reader.Username
	}

	return uc.deliver(journalistID, fmt.Sprintf("%s subscribed to you", readerName))
}

func (uc *notificationUseCase) List(recipientID string, limit, offset int) ([]*entity.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	notifications, err := uc.notificationRepo.ListByRecipient(recipientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.notificationRepo.CountByRecipient(recipientID)
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}
