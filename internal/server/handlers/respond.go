package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/manager"
	"github.com/shilohridge/backoffice/internal/session"
	"github.com/shilohridge/backoffice/pkg/clients/farmapi"
)

// fallbackHeader marks responses served from the local cache after a failed
// backend call so the UI can show its offline banner.
const fallbackHeader = "X-Data-Source"

func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, manager.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, manager.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, session.ErrUnauthenticated), errors.Is(err, session.ErrRejected):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
	case farmapi.IsAuthError(err):
		logger.Warn("backend rejected session token", zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "session expired, sign in again"})
	case errors.Is(err, manager.ErrRemote):
		logger.Warn("backend unavailable", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"detail": err.Error()})
	default:
		logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}

func unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "not signed in"})
}

func listFilter(c *gin.Context) manager.Filter {
	category := c.Query("animal_type")
	if category == "" {
		category = c.Query("category")
	}
	if category == "" {
		category = c.Query("type")
	}
	return manager.Filter{
		Query:    c.Query("q"),
		Category: category,
		Status:   c.Query("status"),
	}
}
