package export

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/santpatricihotel-commits/TicketIA/internal/receipt"
)

type Handler struct {
	receipts *receipt.Service
}

func NewHandler(receipts *receipt.Service) *Handler {
	return &Handler{receipts: receipts}
}

// filterFromQuery reuses the list filter params so an export matches
// whatever the user is currently looking at.
func filterFromQuery(c *gin.Context) receipt.ListFilter {
	return receipt.ListFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Paid:     c.Query("paid"),
	}
}

func exportFilename(ext string) string {
	return fmt.Sprintf("facturas_%s.%s", time.Now().Format("2006-01-02"), ext)
}

func (h *Handler) CSV(c *gin.Context) {
	receipts, err := h.receipts.List(c.Request.Context(), c.GetString("userID"), filterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load receipts"})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename("csv")+`"`)
	if err := WriteCSV(c.Writer, receipts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write csv"})
	}
}

func (h *Handler) XLSX(c *gin.Context) {
	receipts, err := h.receipts.List(c.Request.Context(), c.GetString("userID"), filterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load receipts"})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename("xlsx")+`"`)
	if err := WriteXLSX(c.Writer, receipts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write spreadsheet"})
	}
}

// Report serves the printable HTML expense report.
func (h *Handler) Report(c *gin.Context) {
	receipts, err := h.receipts.List(c.Request.Context(), c.GetString("userID"), filterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load receipts"})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := WriteHTML(c.Writer, receipts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render report"})
	}
}
