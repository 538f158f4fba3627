package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/domain/models"
	"github.com/shilohridge/backoffice/internal/export"
)

// SalesHandler covers invoice creation, status transitions, exports, and the
// printable bill of sale.
type SalesHandler struct {
	holder *Holder
	logger *zap.Logger
}

// NewSalesHandler constructs the HTTP handler adapter.
func NewSalesHandler(holder *Holder, logger *zap.Logger) *SalesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SalesHandler{holder: holder, logger: logger}
}

// Create records a sale through the sales service so the customer snapshot,
// totals, and inventory transitions all happen together.
func (h *SalesHandler) Create(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	var draft models.SaleRecord
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
		return
	}

	sale, err := ws.Sales.CreateSale(c.Request.Context(), draft)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

// PaymentStatus applies a narrow payment-state transition.
func (h *SalesHandler) PaymentStatus(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	err := ws.Sales.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), models.PaymentStatus(c.Query("status")))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeliveryStatus applies a narrow delivery-state transition.
func (h *SalesHandler) DeliveryStatus(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	err := ws.Sales.UpdateDeliveryStatus(c.Request.Context(), c.Param("id"), models.DeliveryStatus(c.Query("status")))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export streams the backend csv or pdf sales report.
func (h *SalesHandler) Export(c *gin.Context) {
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

	blob, err := ws.Export.Sales(c.Request.Context(), format, listFilter(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	serveBlob(c, blob.Filename, blob.ContentType, blob.Data)
}

// BillOfSale renders the printable legal document for one invoice.
func (h *SalesHandler) BillOfSale(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	sale, err := ws.Registry.Sales.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	page, err := export.BillOfSale(export.DefaultIdentity, sale)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
