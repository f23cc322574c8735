package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsroom/internal/entity"
	"newsroom/internal/usecase"
	"newsroom/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApproveNewsletter_DispatchCount(t *testing.T) {
	mockUseCase := new(MockNewsletterUseCase)
	handler := NewNewsletterHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/newsletters/:id/approve", asActor("e1", entity.RoleEditor, handler.ApproveNewsletter))

	actor := entity.Actor{ID: "e1", Role: entity.RoleEditor}
	mockUseCase.On("Approve", actor, "n1").Return(&entity.Newsletter{ID: "n1", Approved: true}, 5, nil)

	req := httptest.NewRequest(http.MethodPost, "/newsletters/n1/approve", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recipients":5`)
}

func TestApproveNewsletter_DispatchFailureIsBadGateway(t *testing.T) {
	mockUseCase := new(MockNewsletterUseCase)
	handler := NewNewsletterHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/newsletters/:id/approve", asActor("e1", entity.RoleEditor, handler.ApproveNewsletter))

	mockUseCase.On("Approve", mock.Anything, "n1").
		Return(&entity.Newsletter{ID: "n1", Approved: true}, 0, errors.New("newsletter approved but dispatch failed: smtp down"))

	req := httptest.NewRequest(http.MethodPost, "/newsletters/n1/approve", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestApproveNewsletter_JournalistRedirected(t *testing.T) {
	mockUseCase := new(MockNewsletterUseCase)
	handler := NewNewsletterHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/newsletters/:id/approve", asActor("j1", entity.RoleJournalist, handler.ApproveNewsletter))

	mockUseCase.On("Approve", mock.Anything, "n1").Return(nil, 0, usecase.ErrForbidden)

	req := httptest.NewRequest(http.MethodPost, "/newsletters/n1/approve", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "notice=")
}
