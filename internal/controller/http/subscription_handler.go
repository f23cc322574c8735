package http

import (
	"net/http"

	"newsroom/internal/entity"
	"newsroom/internal/usecase"
	"newsroom/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
	logger              *logger.Logger
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
		logger:              logger,
	}
}

type SubscribeRequest struct {
	Target   string `json:"target" binding:"required,oneof=journalist publisher"`
	TargetID string `json:"target_id" binding:"required"`
}

// Subscribe godoc
// @Summary      Follow a journalist or publisher
// @Description  Readers only. Subscribing twice to the same target is reported, not rejected.
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubscribeRequest true "Subscription target"
// @Success      201  {object}  map[string]interface{}
// @Success      200  {object}  map[string]interface{}
// @Router       /subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, created, err := h.subscriptionUseCase.Subscribe(actor, entity.TargetKind(req.Target), req.TargetID)
	if err != nil {
		respondError(c, err, "Only readers can subscribe")
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{
			"subscription": sub,
			"message":      "already subscribed",
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"subscription": sub})
}

// Unsubscribe godoc
// @Summary      Unfollow a journalist or publisher
// @Description  Removing an edge that does not exist is a no-op reported with removed=0
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubscribeRequest true "Subscription target"
// @Success      200  {object}  map[string]interface{}
// @Router       /subscriptions [delete]
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	removed, err := h.subscriptionUseCase.Unsubscribe(actor, entity.TargetKind(req.Target), req.TargetID)
	if err != nil {
		respondError(c, err, "Only readers can unsubscribe")
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// ListSubscriptions godoc
// @Summary      List the caller's subscriptions
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Subscription
// @Router       /subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	subs, err := h.subscriptionUseCase.List(actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}
