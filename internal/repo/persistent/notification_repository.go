package persistent

import (
	"newsroom/internal/entity"
	"newsroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByRecipient(recipientID string, limit, offset int) ([]*entity.Notification, error)
	CountByRecipient(recipientID string) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *entity.Notification) error {
	notificationModel := ToNotificationModel(notification)
	if notificationModel.ID == "" {
		notificationModel.ID = uuid.New().String()
	}
	if err := r.db.Create(notificationModel).Error; err != nil {
		return err
	}
	*notification = *ToNotificationEntity(notificationModel)
	return nil
}

func (r *notificationRepository) ListByRecipient(recipientID string, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	query := r.db.Where("recipient_id = ?", recipientID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = ToNotificationEntity(&notificationModels[i])
	}
	return notifications, nil
}

func (r *notificationRepository) CountByRecipient(recipientID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.NotificationModel{}).
		Where("recipient_id = ?", recipientID).
		Count(&count).Error
	return count, err
}
