package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsroom/internal/entity"
	"newsroom/internal/usecase"
	"newsroom/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func subscribeBody(t *testing.T, target, targetID string) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]string{"target": target, "target_id": targetID})
	assert.NoError(t, err)
	return bytes.NewReader(body)
}

func TestSubscribe_NewEdge(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/subscriptions", asActor("r1", entity.RoleReader, handler.Subscribe))

	actor := entity.Actor{ID: "r1", Role: entity.RoleReader}
	mockUseCase.On("Subscribe", actor, entity.TargetJournalist, "j1").Return(&entity.Subscription{
		ID:           "s1",
		ReaderID:     "r1",
		JournalistID: "j1",
	}, true, nil)

	req := httptest.NewRequest(http.MethodPost, "/subscriptions", subscribeBody(t, "journalist", "j1"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSubscribe_DuplicateIsOKWithMessage(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/subscriptions", asActor("r1", entity.RoleReader, handler.Subscribe))

	mockUseCase.On("Subscribe", mock.Anything, entity.TargetPublisher, "p1").Return(&entity.Subscription{
		ID:          "s1",
		ReaderID:    "r1",
		PublisherID: "p1",
	}, false, nil)

	req := httptest.NewRequest(http.MethodPost, "/subscriptions", subscribeBody(t, "publisher", "p1"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already subscribed")
}

func TestSubscribe_JournalistRedirected(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/subscriptions", asActor("j1", entity.RoleJournalist, handler.Subscribe))

	mockUseCase.On("Subscribe", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, false, usecase.ErrForbidden)

	req := httptest.NewRequest(http.MethodPost, "/subscriptions", subscribeBody(t, "journalist", "j2"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "notice=")
}

func TestSubscribe_UnknownTargetRejectedByBinding(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/subscriptions", asActor("r1", entity.RoleReader, handler.Subscribe))

	req := httptest.NewRequest(http.MethodPost, "/subscriptions", subscribeBody(t, "website", "x"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnsubscribe_MissingEdgeIsNoop(t *testing.T) {
	mockUseCase := new(MockSubscriptionUseCase)
	handler := NewSubscriptionHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/subscriptions", asActor("r1", entity.RoleReader, handler.Unsubscribe))

	mockUseCase.On("Unsubscribe", mock.Anything, entity.TargetJournalist, "j1").
		Return(int64(0), nil)

	req := httptest.NewRequest(http.MethodDelete, "/subscriptions", subscribeBody(t, "journalist", "j1"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"removed":0`)
}
