package persistent

import (
	"newsroom/internal/entity"
	"newsroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	Update(article *entity.Article) error
	Delete(id string) error
	ListByAuthor(authorID string) ([]*entity.Article, error)
	ListPending() ([]*entity.Article, error)
	ListApproved() ([]*entity.Article, error)
	ListApprovedFor(journalistIDs, publisherIDs []string) ([]*entity.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *entity.Article) error {
	articleModel := ToArticleModel(article)
	if articleModel.ID == "" {
		articleModel.ID = uuid.New().String()
	}
	if err := r.db.Create(articleModel).Error; err != nil {
		return err
	}
	*article = *ToArticleEntity(articleModel)
	return nil
}

func (r *articleRepository) GetByID(id string) (*entity.Article, error) {
	var articleModel model.ArticleModel
	if err := r.db.Where("id = ?", id).First(&articleModel).Error; err != nil {
		return nil, err
	}
	return ToArticleEntity(&articleModel), nil
}

func (r *articleRepository) Update(article *entity.Article) error {
	return r.db.Save(ToArticleModel(article)).Error
}

func (r *articleRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.ArticleModel{}).Error
}

func (r *articleRepository) ListByAuthor(authorID string) ([]*entity.Article, error) {
	var articleModels []model.ArticleModel
	err := r.db.Where("created_by = ?", authorID).
		Order("created_at DESC").
		Find(&articleModels).Error
	if err != nil {
		return nil, err
	}
	return toArticleEntities(articleModels), nil
}

func (r *articleRepository) ListPending() ([]*entity.Article, error) {
	var articleModels []model.ArticleModel
	err := r.db.Where("approved = ?", false).
		Order("created_at ASC").
		Find(&articleModels).Error
	if err != nil {
		return nil, err
	}
	return toArticleEntities(articleModels), nil
}

func (r *articleRepository) ListApproved() ([]*entity.Article, error) {
	var articleModels []model.ArticleModel
	err := r.db.Where("approved = ?", true).
		Order("created_at DESC").
		Find(&articleModels).Error
	if err != nil {
		return nil, err
	}
	return toArticleEntities(articleModels), nil
}

// ListApprovedFor returns approved articles authored by any of the given
// journalists or published under any of the given publishers, newest first,
// without duplicates.
func (r *articleRepository) ListApprovedFor(journalistIDs, publisherIDs []string) ([]*entity.Article, error) {
	if len(journalistIDs) == 0 && len(publisherIDs) == 0 {
		return []*entity.Article{}, nil
	}

	query := r.db.Where("approved = ?", true)
	switch {
	case len(journalistIDs) > 0 && len(publisherIDs) > 0:
		query = query.Where("created_by IN ? OR publisher_id IN ?", journalistIDs, publisherIDs)
	case len(journalistIDs) > 0:
		query = query.Where("created_by IN ?", journalistIDs)
	default:
		query = query.Where("publisher_id IN ?", publisherIDs)
	}

	var articleModels []model.ArticleModel
	if err := query.Order("created_at DESC").Find(&articleModels).Error; err != nil {
		return nil, err
	}
	return toArticleEntities(articleModels), nil
}

func toArticleEntities(models []model.ArticleModel) []*entity.Article {
	articles := make([]*entity.Article, len(models))
	for i := range models {
		articles[i] = ToArticleEntity(&models[i])
	}
	return articles
}
