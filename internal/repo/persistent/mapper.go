package persistent

import (
	"newsroom/internal/entity"
	"newsroom/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		Role:      entity.Role(m.Role),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		Password:  e.Password,
		Role:      string(e.Role),
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPublisherEntity(m *model.PublisherModel) *entity.Publisher {
	if m == nil {
		return nil
	}

	p := &entity.Publisher{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
	if m.OwnerID != nil {
		p.OwnerID = *m.OwnerID
	}
	return p
}

func ToPublisherModel(e *entity.Publisher) *model.PublisherModel {
	if e == nil {
		return nil
	}

	m := &model.PublisherModel{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
	}
	if e.OwnerID != "" {
		ownerID := e.OwnerID
		m.OwnerID = &ownerID
	}
	return m
}

func ToArticleEntity(m *model.ArticleModel) *entity.Article {
	if m == nil {
		return nil
	}

	a := &entity.Article{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Approved:  m.Approved,
		CreatedBy: m.CreatedBy,
		CoverURL:  m.CoverURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.PublisherID != nil {
		a.PublisherID = *m.PublisherID
	}
	return a
}

func ToArticleModel(e *entity.Article) *model.ArticleModel {
	if e == nil {
		return nil
	}

	m := &model.ArticleModel{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		Approved:  e.Approved,
		CreatedBy: e.CreatedBy,
		CoverURL:  e.CoverURL,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.PublisherID != "" {
		publisherID := e.PublisherID
		m.PublisherID = &publisherID
	}
	return m
}

func ToSubscriptionEntity(m *model.SubscriptionModel) *entity.Subscription {
	if m == nil {
		return nil
	}

	s := &entity.Subscription{
		ID:        m.ID,
		ReaderID:  m.ReaderID,
		CreatedAt: m.CreatedAt,
	}
	if m.JournalistID != nil {
		s.JournalistID = *m.JournalistID
	}
	if m.PublisherID != nil {
		s.PublisherID = *m.PublisherID
	}
	return s
}

func ToSubscriptionModel(e *entity.Subscription) *model.SubscriptionModel {
	if e == nil {
		return nil
	}

	m := &model.SubscriptionModel{
		ID:        e.ID,
		ReaderID:  e.ReaderID,
		CreatedAt: e.CreatedAt,
	}
	if e.JournalistID != "" {
		journalistID := e.JournalistID
		m.JournalistID = &journalistID
	}
	if e.PublisherID != "" {
		publisherID := e.PublisherID
		m.PublisherID = &publisherID
	}
	return m
}

func ToNewsletterEntity(m *model.NewsletterModel) *entity.Newsletter {
	if m == nil {
		return nil
	}

	return &entity.Newsletter{
		ID:          m.ID,
		Title:       m.Title,
		Content:     m.Content,
		AuthorID:    m.AuthorID,
		PublisherID: m.PublisherID,
		Approved:    m.Approved,
		CreatedAt:   m.CreatedAt,
	}
}

func ToNewsletterModel(e *entity.Newsletter) *model.NewsletterModel {
	if e == nil {
		return nil
	}

	return &model.NewsletterModel{
		ID:          e.ID,
		Title:       e.Title,
		Content:     e.Content,
		AuthorID:    e.AuthorID,
		PublisherID: e.PublisherID,
		Approved:    e.Approved,
		CreatedAt:   e.CreatedAt,
	}
}

func ToNotificationEntity(m *model.NotificationModel) *entity.Notification {
	if m == nil {
		return nil
	}

	return &entity.Notification{
		ID:          m.ID,
		RecipientID: m.RecipientID,
		Message:     m.Message,
		CreatedAt:   m.CreatedAt,
	}
}

func ToNotificationModel(e *entity.Notification) *model.NotificationModel {
	if e == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:          e.ID,
		RecipientID: e.RecipientID,
		Message:     e.Message,
		CreatedAt:   e.CreatedAt,
	}
}
