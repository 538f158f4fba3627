package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shilohridge/backoffice/internal/export"
)

const dateLayout = "2006-01-02"

// AccountingHandler serves ledger summaries, reports, and exports.
type AccountingHandler struct {
	holder *Holder
	logger *zap.Logger
}

// NewAccountingHandler constructs the HTTP handler adapter.
func NewAccountingHandler(holder *Holder, logger *zap.Logger) *AccountingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountingHandler{holder: holder, logger: logger}
}

// Summary totals both ledgers over an optional start/end date window.
func (h *AccountingHandler) Summary(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	start, err := parseDateParam(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "start_date must be YYYY-MM-DD"})
		return
	}
	end, err := parseDateParam(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "end_date must be YYYY-MM-DD"})
		return
	}

	summary, err := ws.Accounting.Summary(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Monthly breaks one calendar year down by month. Defaults to this year.
func (h *AccountingHandler) Monthly(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "year must be numeric"})
			return
		}
		year = parsed
	}

	report, err := ws.Accounting.Monthly(c.Request.Context(), year)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Categories returns the closed category lists used by the entry forms.
func (h *AccountingHandler) Categories(c *gin.Context) {
	ws, ok := h.holder.Current()
	if !ok {
		unauthenticated(c)
		return
	}

	expenses, revenue := ws.Accounting.Categories()
	c.JSON(http.StatusOK, gin.H{"expense_categories": expenses, "revenue_types": revenue})
}

// ExportExpenses streams the backend expense ledger rendering.
func (h *AccountingHandler) ExportExpenses(c *gin.Context) {
	h.exportLedger(c, func(ws *Workspace, format export.Format) (blobResult, error) {
		blob, err := ws.Export.Expenses(c.Request.Context(), format, listFilter(c))
		if err != nil {
			return blobResult{}, err
		}
		return blobResult{blob.Filename, blob.ContentType, blob.Data}, nil
	})
}

// ExportRevenue streams the backend revenue ledger rendering.
func (h *AccountingHandler) ExportRevenue(c *gin.Context) {
	h.exportLedger(c, func(ws *Workspace, format export.Format) (blobResult, error) {
		blob, err := ws.Export.Revenue(c.Request.Context(), format, listFilter(c))
		if err != nil {
			return blobResult{}, err
		}
		return blobResult{blob.Filename, blob.ContentType, blob.Data}, nil
	})
}

type blobResult struct {
	filename    string
	contentType string
	data        []byte
}

func (h *AccountingHandler) exportLedger(c *gin.Context, fetch func(*Workspace, export.Format) (blobResult, error)) {
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

	blob, err := fetch(ws, format)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	serveBlob(c, blob.filename, blob.contentType, blob.data)
}

func parseDateParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, raw)
}
