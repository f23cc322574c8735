package http

import (
	"net/http"

	"newsroom/internal/usecase"
	"newsroom/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PublisherHandler struct {
	publisherUseCase usecase.PublisherUseCase
	logger           *logger.Logger
}

func NewPublisherHandler(publisherUseCase usecase.PublisherUseCase, logger *logger.Logger) *PublisherHandler {
	return &PublisherHandler{
		publisherUseCase: publisherUseCase,
		logger:           logger,
	}
}

type CreatePublisherRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CreatePublisher godoc
// @Summary      Register a publisher
// @Description  Editors only
// @Tags         publishers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePublisherRequest true "Publisher data"
// @Success      201  {object}  entity.Publisher
// @Router       /publishers [post]
func (h *PublisherHandler) CreatePublisher(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	publisher, err := h.publisherUseCase.Create(actor, req.Name)
	if err != nil {
		respondError(c, err, "Only editors can manage publishers")
		return
	}
	c.JSON(http.StatusCreated, publisher)
}

// ListPublishers godoc
// @Summary      List publishers
// @Tags         publishers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  entity.Publisher
// @Router       /publishers [get]
func (h *PublisherHandler) ListPublishers(c *gin.Context) {
	publishers, err := h.publisherUseCase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, publishers)
}
