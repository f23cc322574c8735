package http

import (
	"net/http"

	"newsroom/internal/usecase"
	"newsroom/pkg/logger"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterUseCase usecase.NewsletterUseCase
	logger            *logger.Logger
}

func NewNewsletterHandler(newsletterUseCase usecase.NewsletterUseCase, logger *logger.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterUseCase: newsletterUseCase,
		logger:            logger,
	}
}

type CreateNewsletterRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Content     string `json:"content" binding:"required"`
	PublisherID string `json:"publisher_id" binding:"required"`
}

// CreateNewsletter godoc
// @Summary      Draft a newsletter
// @Description  Journalists draft newsletters under a publisher; dispatch waits for editor approval
// @Tags         newsletters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateNewsletterRequest true "Newsletter data"
// @Success      201  {object}  entity.Newsletter
// @Router       /newsletters [post]
func (h *NewsletterHandler) CreateNewsletter(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CreateNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newsletter, err := h.newsletterUseCase.Create(actor, req.Title, req.Content, req.PublisherID)
	if err != nil {
		respondError(c, err, "Only journalists can draft newsletters")
		return
	}
	c.JSON(http.StatusCreated, newsletter)
}

// GetNewsletter godoc
// @Summary      Fetch a newsletter
// @Tags         newsletters
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Newsletter ID"
// @Success      200  {object}  entity.Newsletter
// @Router       /newsletters/{id} [get]
func (h *NewsletterHandler) GetNewsletter(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	newsletter, err := h.newsletterUseCase.Get(actor, c.Param("id"))
	if err != nil {
		respondError(c, err, "This newsletter is awaiting approval")
		return
	}
	c.JSON(http.StatusOK, newsletter)
}

// ApproveNewsletter godoc
// @Summary      Approve and dispatch a newsletter
// @Description  Editors only. Approval emails the newsletter to every follower of its publisher.
// @Tags         newsletters
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Newsletter ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /newsletters/{id}/approve [post]
func (h *NewsletterHandler) ApproveNewsletter(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	newsletter, sent, err := h.newsletterUseCase.Approve(actor, c.Param("id"))
	if err != nil {
		if newsletter != nil && newsletter.Approved {
			// Approval stuck, dispatch did not.
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err, "Only editors can approve newsletters")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"newsletter": newsletter,
		"recipients": sent,
	})
}
