package usecase

import (
	"errors"
	"fmt"
	"io"

	"newsroom/internal/entity"
	"newsroom/internal/repo/persistent"
	"newsroom/pkg/logger"

	"gorm.io/gorm"
)

// ArticleFanout is the slice of the notification use case the article flow
// needs.
type ArticleFanout interface {
	FanOutNewArticle(article *entity.Article) (int, error)
}

// CoverStorage stores article cover images. Satisfied by pkg/s3.Client.
type CoverStorage interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}

type ArticleUseCase interface {
	Create(actor entity.Actor, title, content, publisherID string) (*entity.Article, error)
	// Get returns an article. Readers only see approved articles; the
	// author and editors see unapproved ones too.
	Get(actor entity.Actor, id string) (*entity.Article, error)
	Update(actor entity.Actor, id, title, content string) (*entity.Article, error)
	Delete(actor entity.Actor, id string) error
	// Approve flips the approval flag. Approving an already-approved
	// article is a no-op, not an error.
	Approve(actor entity.Actor, id string) (*entity.Article, error)
	UploadCover(actor entity.Actor, id string, file io.Reader, contentType string) (*entity.Article, error)
}

type articleUseCase struct {
	articleRepo   persistent.ArticleRepository
	publisherRepo persistent.PublisherRepository
	fanout        ArticleFanout
	covers        CoverStorage
	logger        *logger.Logger
}

func NewArticleUseCase(
	articleRepo persistent.ArticleRepository,
	publisherRepo persistent.PublisherRepository,
	fanout ArticleFanout,
	covers CoverStorage,
	logger *logger.Logger,
) ArticleUseCase {
	return &articleUseCase{
		articleRepo:   articleRepo,
		publisherRepo: publisherRepo,
		fanout:        fanout,
		covers:        covers,
		logger:        logger,
	}
}

func (uc *articleUseCase) Create(actor entity.Actor, title, content, publisherID string) (*entity.Article, error) {
	if !Allowed(actor, ActionCreateArticle, nil) {
		return nil, ErrForbidden
	}
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrValidation)
	}

	if publisherID != "" {
		if _, err := uc.publisherRepo.GetByID(publisherID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: publisher %s", ErrNotFound, publisherID)
			}
			return nil, err
		}
	}

	article := &entity.Article{
		Title:       title,
		Content:     content,
		CreatedBy:   actor.ID,
		PublisherID: publisherID,
		Approved:    false,
	}
	if err := uc.articleRepo.Create(article); err != nil {
		uc.logger.Error("Failed to create article: %v", err)
		return nil, fmt.Errorf("failed to create article")
	}

	if uc.fanout != nil {
		count, err := uc.fanout.FanOutNewArticle(article)
		if err != nil {
			uc.logger.Warn("Fan-out for article %s failed: %v", article.ID, err)
		} else {
			uc.logger.Info("Article %s fanned out to %d subscribers", article.ID, count)
		}
	}

	return article, nil
}

func (uc *articleUseCase) Get(actor entity.Actor, id string) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	if !article.Approved && actor.Role == entity.RoleReader {
		return nil, ErrForbidden
	}
	if !article.Approved && actor.Role == entity.RoleJournalist && article.CreatedBy != actor.ID {
		return nil, ErrForbidden
	}
	return article, nil
}

func (uc *articleUseCase) Update(actor entity.Actor, id, title, content string) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	if !Allowed(actor, ActionUpdateArticle, article) {
		return nil, ErrForbidden
	}
	if title != "" {
		article.Title = title
	}
	if content != "" {
		article.Content = content
	}
	if err := uc.articleRepo.Update(article); err != nil {
		uc.logger.Error("Failed to update article %s: %v", id, err)
		return nil, fmt.Errorf("failed to update article")
	}
	return article, nil
}

func (uc *articleUseCase) Delete(actor entity.Actor, id string) error {
	article, err := uc.articleRepo.GetByID(id)
	if err != nil {
		return notFound(err)
	}
	if !Allowed(actor, ActionDeleteArticle, article) {
		return ErrForbidden
	}
	if err := uc.articleRepo.Delete(id); err != nil {
		uc.logger.Error("Failed to delete article %s: %v", id, err)
		return fmt.Errorf("failed to delete article")
	}
	if article.CoverURL != "" && uc.covers != nil {
		if err := uc.covers.DeleteFile(coverKey(id)); err != nil {
			uc.logger.Warn("Failed to delete cover for article %s: %v", id, err)
		}
	}
	return nil
}

func (uc *articleUseCase) Approve(actor entity.Actor, id string) (*entity.Article, error) {
	if !Allowed(actor, ActionApproveArticle, nil) {
		return nil, ErrForbidden
	}
	article, err := uc.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	if article.Approved {
		return article, nil
	}
	article.Approved = true
	if err := uc.articleRepo.Update(article); err != nil {
		uc.logger.Error("Failed to approve article %s: %v", id, err)
		return nil, fmt.Errorf("failed to approve article")
	}
	uc.logger.Info("Article %s approved by %s", id, actor.ID)
	return article, nil
}

func (uc *articleUseCase) UploadCover(actor entity.Actor, id string, file io.Reader, contentType string) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	if !Allowed(actor, ActionUpdateArticle, article) {
		return nil, ErrForbidden
	}
	if uc.covers == nil {
		return nil, fmt.Errorf("cover storage is not configured")
	}

	url, err := uc.covers.UploadFile(coverKey(id), file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload cover for article %s: %v", id, err)
		return nil, fmt.Errorf("failed to upload cover")
	}
	article.CoverURL = url
	if err := uc.articleRepo.Update(article); err != nil {
		uc.logger.Error("Failed to save cover URL for article %s: %v", id, err)
		return nil, fmt.Errorf("failed to save cover")
	}
	return article, nil
}

func coverKey(articleID string) string {
	return "covers/" + articleID
}
