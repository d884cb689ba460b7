package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20 // 10 MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".heic": true,
	".pdf":  true,
}

// Uploader stores the original document and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type Handler struct {
	service  *Service
	uploader Uploader
}

func NewHandler(service *Service, uploader Uploader) *Handler {
	return &Handler{service: service, uploader: uploader}
}

// Upload receives a receipt photo or PDF, stores it and enqueues a
// scan job. The worker picks it up from there.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}

	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 10 MB)"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported file type %q", ext)})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer f.Close()

	key := "scans/" + uuid.NewString() + ext
	url, err := h.uploader.Upload(c.Request.Context(), key, fileHeader.Header.Get("Content-Type"), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
		return
	}

	fileType := "jpg"
	if ext == ".pdf" {
		fileType = "pdf"
	}

	job := &Job{
		UserID:   c.GetString("userID"),
		ImageURL: url,
		Filename: fileHeader.Filename,
		FileType: fileType,
	}
	if err := h.service.Enqueue(c.Request.Context(), job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue scan"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"id":       job.ID,
		"status":   job.Status,
		"imageUrl": job.ImageURL,
	})
}

// Get reports job status; once the job is SCAN_DONE the response
// carries the draft invoice for the review form.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	job, err := h.service.Get(c.Request.Context(), c.GetString("userID"), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, job)
}

// List returns the user's most recent scan jobs.
func (h *Handler) List(c *gin.Context) {
	jobs, err := h.service.ListRecent(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list scans"})
		return
	}
	if jobs == nil {
		jobs = []*Job{}
	}
	c.JSON(http.StatusOK, jobs)
}
