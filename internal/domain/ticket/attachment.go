package ticket

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/resolvia-inc/resolvia/internal/shared/biztime"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

const (
	// MaxAttachmentsPerTicket caps the number of files a ticket may carry.
	MaxAttachmentsPerTicket = 5

	// MaxAttachmentSize is the per-file upload cap in bytes.
	MaxAttachmentSize = 10 << 20
)

// allowedAttachmentExtensions is the upload allow-list, matched without the
// leading dot and case-insensitively.
var allowedAttachmentExtensions = map[string]bool{
	"pdf":  true,
	"txt":  true,
	"log":  true,
	"doc":  true,
	"docx": true,
	"xls":  true,
	"xlsx": true,
	"csv":  true,
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
	"webp": true,
	"svg":  true,
	"mp4":  true,
}

// Attachment is a file tied to a ticket, optionally scoped to one of its
// responses. Like responses, attachments are exclusively owned by the ticket.
type Attachment struct {
	id               uint
	ticketID         uint
	responseID       *uint
	uploadedByUserID uint
	fileName         string
	storagePath      string
	mimeType         string
	sizeBytes        int64
	createdAt        time.Time
}

// ValidateAttachmentFile enforces the extension allow-list and the size cap
// before anything touches storage.
func ValidateAttachmentFile(fileName string, sizeBytes int64) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if !allowedAttachmentExtensions[ext] {
		return errors.NewValidationError(fmt.Sprintf("file type not allowed: %s", ext))
	}
	if sizeBytes > MaxAttachmentSize {
		return errors.NewPayloadTooLargeError("file exceeds the maximum size of 10MB")
	}
	if sizeBytes <= 0 {
		return errors.NewValidationError("file is empty")
	}
	return nil
}

func NewAttachment(
	ticketID uint,
	responseID *uint,
	uploadedByUserID uint,
	fileName string,
	storagePath string,
	mimeType string,
	sizeBytes int64,
) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if uploadedByUserID == 0 {
		return nil, fmt.Errorf("uploader user ID is required")
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("file name is required")
	}
	if len(storagePath) == 0 {
		return nil, fmt.Errorf("storage path is required")
	}
	if err := ValidateAttachmentFile(fileName, sizeBytes); err != nil {
		return nil, err
	}

	return &Attachment{
		ticketID:         ticketID,
		responseID:       responseID,
		uploadedByUserID: uploadedByUserID,
		fileName:         fileName,
		storagePath:      storagePath,
		mimeType:         mimeType,
		sizeBytes:        sizeBytes,
		createdAt:        biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	responseID *uint,
	uploadedByUserID uint,
	fileName string,
	storagePath string,
	mimeType string,
	sizeBytes int64,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:               id,
		ticketID:         ticketID,
		responseID:       responseID,
		uploadedByUserID: uploadedByUserID,
		fileName:         fileName,
		storagePath:      storagePath,
		mimeType:         mimeType,
		sizeBytes:        sizeBytes,
		createdAt:        createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) ResponseID() *uint {
	return a.responseID
}

func (a *Attachment) UploadedByUserID() uint {
	return a.uploadedByUserID
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) StoragePath() string {
	return a.storagePath
}

func (a *Attachment) MimeType() string {
	return a.mimeType
}

func (a *Attachment) SizeBytes() int64 {
	return a.sizeBytes
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

// WithinAuthorWindow reports whether the uploader may still remove the file.
func (a *Attachment) WithinAuthorWindow(now time.Time) bool {
	return now.Sub(a.createdAt) <= AuthorWindow
}

// CanBeDeletedBy checks the uploader-plus-window rule for removal.
func (a *Attachment) CanBeDeletedBy(userID uint, now time.Time) error {
	if a.uploadedByUserID != userID {
		return errors.NewForbiddenError("only the uploader can delete this attachment")
	}
	if !a.WithinAuthorWindow(now) {
		return errors.NewEditWindowExpiredError()
	}
	return nil
}
