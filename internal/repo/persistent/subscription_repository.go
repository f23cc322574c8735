package persistent

import (
	"newsroom/internal/entity"
	"newsroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	// Upsert inserts the edge unless an equal one already exists. It reports
	// whether a new row was written; either way sub holds the stored edge.
	Upsert(sub *entity.Subscription) (bool, error)
	Delete(readerID string, kind entity.TargetKind, targetID string) (int64, error)
	ListByReader(readerID string) ([]*entity.Subscription, error)
	ListJournalistFollowers(journalistID string) ([]*entity.Subscription, error)
	ListPublisherFollowers(publisherID string) ([]*entity.Subscription, error)
	ListPublisherFollowerEmails(publisherID string) ([]string, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Upsert relies on the partial unique indexes: INSERT ... ON CONFLICT DO
// NOTHING means two racing subscribes still end with exactly one edge, with
// no check-then-insert window.
func (r *subscriptionRepository) Upsert(sub *entity.Subscription) (bool, error) {
	subModel := ToSubscriptionModel(sub)
	if subModel.ID == "" {
		subModel.ID = uuid.New().String()
	}

	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(subModel)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected > 0 {
		*sub = *ToSubscriptionEntity(subModel)
		return true, nil
	}

	// Lost the race or duplicate call: fetch the surviving edge.
	existing, err := r.get(sub.ReaderID, targetKind(sub), targetIDOf(sub))
	if err != nil {
		return false, err
	}
	*sub = *existing
	return false, nil
}

func (r *subscriptionRepository) get(readerID string, kind entity.TargetKind, targetID string) (*entity.Subscription, error) {
	var subModel model.SubscriptionModel
	query := r.db.Where("reader_id = ?", readerID)
	if kind == entity.TargetJournalist {
		query = query.Where("journalist_id = ?", targetID)
	} else {
		query = query.Where("publisher_id = ?", targetID)
	}
	if err := query.First(&subModel).Error; err != nil {
		return nil, err
	}
	return ToSubscriptionEntity(&subModel), nil
}

func (r *subscriptionRepository) Delete(readerID string, kind entity.TargetKind, targetID string) (int64, error) {
	query := r.db.Where("reader_id = ?", readerID)
	if kind == entity.TargetJournalist {
		query = query.Where("journalist_id = ?", targetID)
	} else {
		query = query.Where("publisher_id = ?", targetID)
	}
	result := query.Delete(&model.SubscriptionModel{})
	return result.RowsAffected, result.Error
}

func (r *subscriptionRepository) ListByReader(readerID string) ([]*entity.Subscription, error) {
	var subModels []model.SubscriptionModel
	if err := r.db.Where("reader_id = ?", readerID).Find(&subModels).Error; err != nil {
		return nil, err
	}
	return toSubscriptionEntities(subModels), nil
}

func (r *subscriptionRepository) ListJournalistFollowers(journalistID string) ([]*entity.Subscription, error) {
	var subModels []model.SubscriptionModel
	if err := r.db.Where("journalist_id = ?", journalistID).Find(&subModels).Error; err != nil {
		return nil, err
	}
	return toSubscriptionEntities(subModels), nil
}

func (r *subscriptionRepository) ListPublisherFollowers(publisherID string) ([]*entity.Subscription, error) {
	var subModels []model.SubscriptionModel
	if err := r.db.Where("publisher_id = ?", publisherID).Find(&subModels).Error; err != nil {
		return nil, err
	}
	return toSubscriptionEntities(subModels), nil
}

// ListPublisherFollowerEmails returns the addresses of readers following the
// publisher, skipping accounts without an email.
func (r *subscriptionRepository) ListPublisherFollowerEmails(publisherID string) ([]string, error) {
	var emails []string
	err := r.db.Table("subscriptions").
		Select("users.email").
		Joins("JOIN users ON users.id = subscriptions.reader_id").
		Where("subscriptions.publisher_id = ? AND users.email <> ''", publisherID).
		Scan(&emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}

func toSubscriptionEntities(models []model.SubscriptionModel) []*entity.Subscription {
	subs := make([]*entity.Subscription, len(models))
	for i := range models {
		subs[i] = ToSubscriptionEntity(&models[i])
	}
	return subs
}

func targetKind(sub *entity.Subscription) entity.TargetKind {
	if sub.JournalistID != "" {
		return entity.TargetJournalist
	}
	return entity.TargetPublisher
}

func targetIDOf(sub *entity.Subscription) string {
	if sub.JournalistID != "" {
		return sub.JournalistID
	}
	return sub.PublisherID
}
