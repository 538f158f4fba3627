package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/domain/models"
	"github.com/shilohridge/backoffice/internal/export"
)

// InventoryHandler covers the inventory routes beyond plain CRUD: health
// records, status transitions, exports, and the printable roster.
type InventoryHandler struct {
	holder *Holder
	logger *zap.Logger
}

// NewInventoryHandler constructs the HTTP handler adapter.
func NewInventoryHandler(holder *Holder, logger *zap.Logger) *InventoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryHandler{holder: holder, logger: logger}
}

// AddHealthRecord appends a veterinary entry to one animal's history.
func (h *InventoryHandler) AddHealthRecord(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	var record models.HealthRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}
	if record.Date == "" || record.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "date and type are required"})
		return
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.CreatedAt = time.Now()

	item, err := ws.Registry.Inventory.Mutate(c.Request.Context(), c.Param("id"), func(animal *models.InventoryItem) {
		animal.HealthRecords = append(animal.HealthRecords, record)
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateStatus moves an animal through the lifecycle enumeration.
func (h *InventoryHandler) UpdateStatus(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	status := c.Query("status")
	if !models.ValidInventoryStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid status " + status})
		return
	}

	err := ws.Registry.Inventory.Patch(c.Request.Context(), c.Param("id"), "/status", status, func(animal *models.InventoryItem) {
		animal.Status = models.InventoryStatus(status)
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export streams the backend csv or pdf rendering, carrying the active
// list filters.
func (h *InventoryHandler) Export(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	format := export.Format(c.Param("format"))
	if format != export.FormatCSV && format != export.FormatPDF {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "format must be csv or pdf"})
		return
	}

	blob, err := ws.Export.Inventory(c.Request.Context(), format, listFilter(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	serveBlob(c, blob.Filename, blob.ContentType, blob.Data)
}

// Workbook serves the offline .xlsx snapshot built locally from whatever the
// current session can see.
func (h *InventoryHandler) Workbook(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	items, err := ws.Registry.Inventory.List(c.Request.Context(), listFilter(c))
	if err != nil && len(items) == 0 {
		respondError(c, h.logger, err)
		return
	}
	summary, err := ws.Accounting.Summary(c.Request.Context(), time.Time{}, time.Time{})
	if err != nil {
		h.logger.Warn("workbook summary unavailable", zap.Error(err))
	}

	data, err := export.Workbook(items, summary)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	filename := fmt.Sprintf("farm-records-%s.xlsx", time.Now().Format("2006-01-02"))
	serveBlob(c, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Print renders the printable animal roster for the current filters.
func (h *InventoryHandler) Print(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	filter := listFilter(c)
	items, err := ws.Registry.Inventory.List(c.Request.Context(), filter)
	if err != nil && len(items) == 0 {
		respondError(c, h.logger, err)
		return
	}

	title := "Animal Inventory"
	if filter.Category != "" {
		title = fmt.Sprintf("Animal Inventory - %s", filter.Category)
	}
	page, err := export.InventoryList(export.DefaultIdentity, title, items)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func serveBlob(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
