package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/demo"
	"github.com/shilohridge/backoffice/internal/domain/models"
	"github.com/shilohridge/backoffice/internal/repository/fallback"
)

// PublicHandler serves the storefront read-only views straight from the
// fallback store, so the public site stays up whether anyone is signed in or
// the backend is reachable. Demo seeds backstop a cold cache.
type PublicHandler struct {
	store  fallback.Store
	logger *zap.Logger
}

// NewPublicHandler constructs the HTTP handler adapter.
func NewPublicHandler(store fallback.Store, logger *zap.Logger) *PublicHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PublicHandler{store: store, logger: logger}
}

// Livestock lists sale animals. Records not marked available stay off the
// public page.
func (h *PublicHandler) Livestock(c *gin.Context) {
	animals := readCached(h, fallback.KeyLivestock, demo.Livestock)

	listed := make([]models.Livestock, 0, len(animals))
	for _, animal := range animals {
		if animal.Status == "available" {
			listed = append(listed, animal)
		}
	}
	c.JSON(http.StatusOK, listed)
}

// LivestockDetail serves one sale animal by id.
func (h *PublicHandler) LivestockDetail(c *gin.Context) {
	id := c.Param("id")
	for _, animal := range readCached(h, fallback.KeyLivestock, demo.Livestock) {
		if animal.ID == id && animal.Status == "available" {
			c.JSON(http.StatusOK, animal)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "livestock not found"})
}

// Products lists the orderable farm product catalog.
func (h *PublicHandler) Products(c *gin.Context) {
	products := readCached(h, fallback.KeyProducts, demo.Products)

	listed := make([]models.Product, 0, len(products))
	for _, product := range products {
		if product.IsAvailable {
			listed = append(listed, product)
		}
	}
	c.JSON(http.StatusOK, listed)
}

// About serves the public about page content.
func (h *PublicHandler) About(c *gin.Context) {
	c.JSON(http.StatusOK, readCachedDoc(h, fallback.KeyAbout, demo.About))
}

// Blog serves the public blog document.
func (h *PublicHandler) Blog(c *gin.Context) {
	c.JSON(http.StatusOK, readCachedDoc(h, fallback.KeyBlog, demo.Blog))
}

// readCached decodes the locally mirrored collection under key, falling back
// to the demo seed when the cache is cold or unreadable.
func readCached[T any](h *PublicHandler, key string, seed func() []T) []T {
	payload, ok, err := h.store.ReadCache(key)
	if err != nil || !ok || len(payload) == 0 {
		if err != nil {
			h.logger.Warn("fallback read failed, serving seed", zap.String("key", key), zap.Error(err))
		}
		return seed()
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		h.logger.Warn("cached payload unreadable, serving seed", zap.String("key", key), zap.Error(err))
		return seed()
	}
	return items
}

func readCachedDoc[T any](h *PublicHandler, key string, seed func() T) T {
	payload, ok, err := h.store.ReadCache(key)
	if err != nil || !ok || len(payload) == 0 {
		if err != nil {
			h.logger.Warn("fallback read failed, serving seed", zap.String("key", key), zap.Error(err))
		}
		return seed()
	}

	var doc T
	if err := json.Unmarshal(payload, &doc); err != nil {
		h.logger.Warn("cached payload unreadable, serving seed", zap.String("key", key), zap.Error(err))
		return seed()
	}
	return doc
}
