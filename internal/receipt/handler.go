package receipt

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type receiptRequest struct {
	Vendor        string          `json:"vendor"`
	Amount        decimal.Decimal `json:"amount"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Paid          bool            `json:"paid"`
	FileType      string          `json:"fileType"`
	ImageURL      string          `json:"imageUrl"`
	OCRText       string          `json:"ocrText"`
}

// Create saves a reviewed receipt.
func (h *Handler) Create(c *gin.Context) {
	var req receiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	rec := &Receipt{
		UserID:        c.GetString("userID"),
		Vendor:        req.Vendor,
		Amount:        req.Amount,
		TaxAmount:     req.TaxAmount,
		Date:          req.Date,
		Category:      req.Category,
		Description:   req.Description,
		InvoiceNumber: req.InvoiceNumber,
		Paid:          req.Paid,
		FileType:      req.FileType,
		ImageURL:      req.ImageURL,
		OCRText:       req.OCRText,
	}

	if err := h.service.Create(c.Request.Context(), rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// List returns the user's receipts, honoring the filter bar params.
func (h *Handler) List(c *gin.Context) {
	filter := ListFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Paid:     c.Query("paid"),
	}

	receipts, err := h.service.List(c.Request.Context(), c.GetString("userID"), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list receipts"})
		return
	}
	if receipts == nil {
		receipts = []*Receipt{}
	}
	c.JSON(http.StatusOK, receipts)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	rec, err := h.service.Get(c.Request.Context(), c.GetString("userID"), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req receiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	rec := &Receipt{
		ID:            id,
		UserID:        c.GetString("userID"),
		Vendor:        req.Vendor,
		Amount:        req.Amount,
		TaxAmount:     req.TaxAmount,
		Date:          req.Date,
		Category:      req.Category,
		Description:   req.Description,
		InvoiceNumber: req.InvoiceNumber,
		Paid:          req.Paid,
		FileType:      req.FileType,
		ImageURL:      req.ImageURL,
		OCRText:       req.OCRText,
	}

	if err := h.service.Update(c.Request.Context(), rec); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetString("userID"), id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "receipt deleted"})
}

// TogglePaid flips the paid flag.
func (h *Handler) TogglePaid(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	paid, err := h.service.TogglePaid(c.Request.Context(), c.GetString("userID"), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "paid": paid})
}

// Stats serves the dashboard aggregates.
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
