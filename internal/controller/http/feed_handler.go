package http

import (
	"net/http"

	"newsroom/internal/usecase"
	"newsroom/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase usecase.FeedUseCase
	logger      *logger.Logger
}

func NewFeedHandler(feedUseCase usecase.FeedUseCase, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{
		feedUseCase: feedUseCase,
		logger:      logger,
	}
}

// Dashboard godoc
// @Summary      Role-shaped landing view
// @Description  Journalists see their own articles, editors the approval queue, readers their subscription feed. Denied actions redirect here with a notice query parameter.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        notice query string false "Informational notice carried over from a denied action"
// @Success      200  {object}  usecase.Dashboard
// @Router       /dashboard [get]
func (h *FeedHandler) Dashboard(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	dashboard, err := h.feedUseCase.Dashboard(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{
		"role":          dashboard.Role,
		"articles":      dashboard.Articles,
		"publishers":    dashboard.Publishers,
		"notifications": dashboard.Notifications,
	}
	if notice := c.Query("notice"); notice != "" {
		response["notice"] = notice
	}

	c.JSON(http.StatusOK, response)
}
