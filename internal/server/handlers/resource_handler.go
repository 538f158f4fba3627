package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/manager"
)

// ResourceHandler adapts one resource manager to the CRUD route shape shared
// by every admin collection.
type ResourceHandler[T manager.Record] struct {
	resolve func() (*manager.Collection[T], bool)
	logger  *zap.Logger
}

// NewResourceHandler constructs the HTTP handler adapter for one collection.
// resolve looks the manager up in the current workspace on every request, so
// handlers survive workspace swaps on re-login.
func NewResourceHandler[T manager.Record](resolve func() (*manager.Collection[T], bool), logger *zap.Logger) *ResourceHandler[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceHandler[T]{resolve: resolve, logger: logger}
}

// List returns the filtered collection. When the backend is down the cached
// mirror is served with the fallback header set.
func (h *ResourceHandler[T]) List(c *gin.Context) {
	col, ok := h.resolve()
	if !ok {
		unauthenticated(c)
		return
	}

	items, err := col.List(c.Request.Context(), listFilter(c))
	if err != nil {
		if !errors.Is(err, manager.ErrRemote) {
			respondError(c, h.logger, err)
			return
		}
		c.Header(fallbackHeader, "fallback")
	}
	c.JSON(http.StatusOK, items)
}

// Get returns one record by id.
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	col, ok := h.resolve()
	if !ok {
		unauthenticated(c)
		return
	}

	item, err := col.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create validates and persists a new record.
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	col, ok := h.resolve()
	if !ok {
		unauthenticated(c)
		return
	}

	var draft T
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	created, err := col.Create(c.Request.Context(), draft)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update replaces a record wholesale.
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	col, ok := h.resolve()
	if !ok {
		unauthenticated(c)
		return
	}

	var draft T
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	updated, err := col.Update(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a record by id.
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	col, ok := h.resolve()
	if !ok {
		unauthenticated(c)
		return
	}

	if err := col.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PatchStatus applies a narrow status transition via the ?status query param.
func (h *ResourceHandler[T]) PatchStatus(subpath string, valid func(string) bool, apply func(*T, string)) gin.HandlerFunc {
	return func(c *gin.Context) {
		col, ok := h.resolve()
		if !ok {
			unauthenticated(c)
			return
		}

		status := c.Query("status")
		if status == "" || (valid != nil && !valid(status)) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid status " + status})
			return
		}

		err := col.Patch(c.Request.Context(), c.Param("id"), subpath, status, func(item *T) {
			apply(item, status)
		})
		if err != nil {
			respondError(c, h.logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Routes registers the shared CRUD surface on a route group.
func (h *ResourceHandler[T]) Routes(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
