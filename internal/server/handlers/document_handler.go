package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/manager"
)

// DocumentHandler adapts a singleton document manager (about page, blog,
// site settings) to GET/PUT routes.
type DocumentHandler[T any] struct {
	resolve func() (*manager.Document[T], bool)
	logger  *zap.Logger
}

// NewDocumentHandler constructs the HTTP handler adapter for one document.
func NewDocumentHandler[T any](resolve func() (*manager.Document[T], bool), logger *zap.Logger) *DocumentHandler[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentHandler[T]{resolve: resolve, logger: logger}
}

// Get returns the document, from cache with the fallback header when the
// backend is down.
func (h *DocumentHandler[T]) Get(c *gin.Context) {
	doc, ok := h.resolve()
	if !ok {
		unauthenticated(c)
		return
	}

	value, err := doc.Get(c.Request.Context())
	if err != nil {
		if !errors.Is(err, manager.ErrRemote) {
			respondError(c, h.logger, err)
			return
		}
		c.Header(fallbackHeader, "fallback")
	}
	c.JSON(http.StatusOK, value)
}

// Put replaces the document wholesale.
func (h *DocumentHandler[T]) Put(c *gin.Context) {
	doc, ok := h.resolve()
	if !ok {
		unauthenticated(c)
		return
	}

	var draft T
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	updated, err := doc.Update(c.Request.Context(), draft)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Routes registers the document surface on a route group.
func (h *DocumentHandler[T]) Routes(g *gin.RouterGroup) {
	g.GET("", h.Get)
	g.PUT("", h.Put)
}
