package scan

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/disintegration/imaging"

	"github.com/santpatricihotel-commits/TicketIA/internal/extract"
)

// extractText is swapped out in tests; the real thing shells out to
// tesseract.
var extractText = runTesseract

// minPDFTextChars decides whether a PDF's text layer is usable or the
// document is a scan that needs OCR.
const minPDFTextChars = 20

type Service struct {
	repo   Repository
	client *http.Client
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enqueue registers an uploaded document for scanning.
func (s *Service) Enqueue(ctx context.Context, job *Job) error {
	return s.repo.Create(ctx, job)
}

func (s *Service) Get(ctx context.Context, userID string, id int) (*Job, error) {
	return s.repo.Get(ctx, userID, id)
}

func (s *Service) ListRecent(ctx context.Context, userID string) ([]*Job, error) {
	return s.repo.ListRecent(ctx, userID, 20)
}

// ProcessOne claims and processes a single pending job. Job-level
// failures are recorded on the job and never returned, so one bad
// upload cannot stall the worker loop.
func (s *Service) ProcessOne(ctx context.Context) error {
	job, err := s.repo.FetchPending(ctx)
	if err != nil {
		return err
	}
	if job == nil {
		return nil
	}

	log.Printf("SCAN_CLAIMED id=%d file=%s", job.ID, job.Filename)

	data, err := s.download(ctx, job.ImageURL)
	if err != nil {
		_ = s.repo.MarkFailed(ctx, job.ID, err.Error())
		return nil
	}

	rawText, err := s.readDocument(ctx, job, data)
	if err != nil {
		return nil // readDocument already recorded the outcome
	}

	text := cleanText(rawText)
	draft := extract.Extract(text)

	log.Printf("SCAN_DONE id=%d text_length=%d vendor=%q amount=%s",
		job.ID, len(text), draft.Vendor, draft.Amount)

	if err := s.repo.SaveResult(ctx, job.ID, text, &draft); err != nil {
		log.Printf("⚠️  failed to save scan result id=%d: %v", job.ID, err)
		return err
	}
	return nil
}

func (s *Service) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// An error page is not a document; reading it anyway would surface
		// as an unsupported format instead of a failed download.
		return nil, fmt.Errorf("download failed: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// readDocument turns the uploaded bytes into raw OCR text. PDFs with a
// usable text layer skip tesseract entirely.
func (s *Service) readDocument(ctx context.Context, job *Job, data []byte) (string, error) {
	if isPDF(data) {
		text, err := pdfText(data)
		if err == nil && len(cleanText(text)) >= minPDFTextChars {
			log.Printf("SCAN_PDF_TEXT id=%d chars=%d", job.ID, len(text))
			return text, nil
		}

		// Scanned PDF: render the first page and OCR it.
		img, err := pdfFirstPage(data)
		if err != nil {
			_ = s.repo.MarkFailed(ctx, job.ID, err.Error())
			return "", err
		}
		return s.ocrImage(ctx, job, img)
	}

	img, err := decodeImage(data)
	if err != nil {
		_ = s.repo.MarkSkipped(ctx, job.ID, "unsupported file format")
		return "", err
	}
	return s.ocrImage(ctx, job, img)
}

// ocrImage runs the enhancement chain, writes a temp PNG and hands it
// to tesseract.
func (s *Service) ocrImage(ctx context.Context, job *Job, src image.Image) (string, error) {
	prepared := prepareForOCR(src)

	tmp, err := os.CreateTemp("", "scan-*.png")
	if err != nil {
		_ = s.repo.MarkFailed(ctx, job.ID, err.Error())
		return "", err
	}
	defer os.Remove(tmp.Name())
	_ = tmp.Close()

	if err := imaging.Save(prepared, tmp.Name()); err != nil {
		_ = s.repo.MarkFailed(ctx, job.ID, err.Error())
		return "", err
	}

	text, err := extractText(tmp.Name())
	if err != nil {
		_ = s.repo.MarkFailed(ctx, job.ID, err.Error())
		return "", err
	}
	return text, nil
}
