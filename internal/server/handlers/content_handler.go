package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/demo"
	"github.com/shilohridge/backoffice/internal/domain/models"
	"github.com/shilohridge/backoffice/internal/export"
	"github.com/shilohridge/backoffice/internal/repository/fallback"
)

// ContentHandler covers the NFT certificate and mint stub, file uploads, and
// the market ticker.
type ContentHandler struct {
	holder *Holder
	store  fallback.Store
	logger *zap.Logger
}

// NewContentHandler constructs the HTTP handler adapter.
func NewContentHandler(holder *Holder, store fallback.Store, logger *zap.Logger) *ContentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentHandler{holder: holder, store: store, logger: logger}
}

// NFTCertificate renders the printable ownership certificate for one minted
// token.
func (h *ContentHandler) NFTCertificate(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	record, err := ws.Registry.NFT.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	animal, err := ws.Registry.Livestock.Get(c.Request.Context(), record.LivestockID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	page, err := export.NFTCertificate(export.DefaultIdentity, animal, record)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// Mint opens a certificate record for an animal and flags it as entering the
// minting pipeline. The record stays pending; no chain transaction is
// submitted until wallet configuration lands.
func (h *ContentHandler) Mint(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}
	ctx := c.Request.Context()

	var req struct {
		LivestockID string `json:"livestock_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "livestock_id is required"})
		return
	}

	if _, err := ws.Registry.Livestock.Get(ctx, req.LivestockID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	record, err := ws.Registry.NFT.Create(ctx, models.NFTRecord{
		LivestockID: req.LivestockID,
		Status:      models.NFTPending,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if _, err := ws.Registry.Livestock.Mutate(ctx, req.LivestockID, func(a *models.Livestock) {
		a.NFTMinted = true
	}); err != nil {
		h.logger.Warn("animal not flagged after mint request",
			zap.String("livestock_id", req.LivestockID), zap.Error(err))
	}

	c.JSON(http.StatusOK, record)
}

// Upload accepts a multipart photo or receipt scan and forwards it to
// backend storage. Demo sessions get a local placeholder URL instead of a
// network call.
func (h *ContentHandler) Upload(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "multipart field 'file' is required"})
		return
	}

	if ws.Session.Demo() {
		c.JSON(http.StatusOK, gin.H{"url": "local://uploads/" + file.Filename})
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	url, err := ws.Export.Upload(c.Request.Context(), file.Filename, data)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Ticker serves the latest cached market quotes. The cache is fed by the
// cron poller; demo data backstops a cold cache so the widget never 404s.
func (h *ContentHandler) Ticker(c *gin.Context) {
	payload, ok, err := h.store.ReadCache(fallback.KeyTicker)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if !ok || len(payload) == 0 {
		c.JSON(http.StatusOK, demo.MarketTicker())
		return
	}

	var quotes models.Ticker
	if err := json.Unmarshal(payload, &quotes); err != nil {
		h.logger.Warn("cached ticker unreadable, serving seed", zap.Error(err))
		c.JSON(http.StatusOK, demo.MarketTicker())
		return
	}
	c.JSON(http.StatusOK, quotes)
}
