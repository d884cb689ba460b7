package scan

import (
	"time"

	"github.com/santpatricihotel-commits/TicketIA/internal/extract"
)

// Job lifecycle. A job is claimed atomically by one worker, so a status
// only ever moves forward.
const (
	StatusUploaded   = "UPLOADED"
	StatusProcessing = "SCAN_PROCESSING"
	StatusDone       = "SCAN_DONE"
	StatusFailed     = "SCAN_FAILED"
	StatusSkipped    = "SCAN_SKIPPED"
)

// Job is one uploaded document waiting for (or finished with) OCR and
// field extraction. Draft holds the suggested invoice until the user
// confirms it into a receipt.
type Job struct {
	ID        int              `json:"id"`
	UserID    string           `json:"userId"`
	ImageURL  string           `json:"imageUrl"`
	Filename  string           `json:"filename"`
	FileType  string           `json:"fileType"`
	Status    string           `json:"status"`
	ScanError string           `json:"scanError,omitempty"`
	RawText   string           `json:"rawText,omitempty"`
	Draft     *extract.Invoice `json:"draft,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
