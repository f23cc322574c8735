package http

import (
	"errors"
	"net/http"
	"net/url"

	"newsroom/internal/entity"
	"newsroom/internal/usecase"

	"github.com/gin-gonic/gin"
)

// currentActor reads the identity the auth middleware stored on the context.
func currentActor(c *gin.Context) (entity.Actor, bool) {
	userID, ok := c.Get("user_id")
	if !ok {
		return entity.Actor{}, false
	}
	role, ok := c.Get("user_role")
	if !ok {
		return entity.Actor{}, false
	}
	return entity.Actor{
		ID:   userID.(string),
		Role: entity.Role(role.(string)),
	}, true
}

// softDeny answers a forbidden action with a redirect back to the dashboard
// carrying a human-readable notice, instead of a hard 403.
func softDeny(c *gin.Context, notice string) {
	c.Redirect(http.StatusSeeOther, "/api/v1/dashboard?notice="+url.QueryEscape(notice))
}

// respondError maps use case errors onto HTTP answers. Forbidden becomes a
// soft redirect; everything else is a JSON error body.
func respondError(c *gin.Context, err error, denyNotice string) {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		softDeny(c, denyNotice)
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
