package ticket

import (
	"fmt"
	"time"

	"github.com/resolvia-inc/resolvia/internal/domain/ticket/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/shared/biztime"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

const maxResponseContentLength = 5000

// AuthorWindow is how long the author of a response or attachment may still
// edit or remove it.
const AuthorWindow = 30 * time.Minute

// Response is a single message on a ticket's conversation thread. It is
// exclusively owned by its ticket.
type Response struct {
	id         uint
	ticketID   uint
	authorID   uint
	authorType valueobjects.ResponseAuthorType
	content    string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewResponse(
	ticketID uint,
	authorID uint,
	authorType valueobjects.ResponseAuthorType,
	content string,
) (*Response, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if authorType != valueobjects.AuthorUser && authorType != valueobjects.AuthorAgent {
		return nil, fmt.Errorf("invalid response author type: %s", authorType)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > maxResponseContentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", maxResponseContentLength)
	}

	now := biztime.NowUTC()
	return &Response{
		ticketID:   ticketID,
		authorID:   authorID,
		authorType: authorType,
		content:    content,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructResponse(
	id uint,
	ticketID uint,
	authorID uint,
	authorType valueobjects.ResponseAuthorType,
	content string,
	createdAt, updatedAt time.Time,
) (*Response, error) {
	if id == 0 {
		return nil, fmt.Errorf("response ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if !authorType.IsValid() {
		return nil, fmt.Errorf("invalid response author type")
	}

	return &Response{
		id:         id,
		ticketID:   ticketID,
		authorID:   authorID,
		authorType: authorType,
		content:    content,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (r *Response) ID() uint {
	return r.id
}

func (r *Response) TicketID() uint {
	return r.ticketID
}

func (r *Response) AuthorID() uint {
	return r.authorID
}

func (r *Response) AuthorType() valueobjects.ResponseAuthorType {
	return r.authorType
}

func (r *Response) Content() string {
	return r.content
}

func (r *Response) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Response) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Response) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("response ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("response ID cannot be zero")
	}
	r.id = id
	return nil
}

// IsAuthoredBy reports whether the given user wrote this response.
func (r *Response) IsAuthoredBy(userID uint) bool {
	return r.authorID == userID
}

// WithinAuthorWindow reports whether the authorial edit window is still
// open at the given instant.
func (r *Response) WithinAuthorWindow(now time.Time) bool {
	return now.Sub(r.createdAt) <= AuthorWindow
}

// UpdateContent rewrites the response body. Only the author may edit, and
// only while the window is open.
func (r *Response) UpdateContent(content string, editorID uint, now time.Time) error {
	if !r.IsAuthoredBy(editorID) {
		return errors.NewForbiddenError("only the author can edit this response")
	}
	if !r.WithinAuthorWindow(now) {
		return errors.NewEditWindowExpiredError()
	}
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}
	if len(content) > maxResponseContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxResponseContentLength)
	}

	r.content = content
	r.updatedAt = biztime.NowUTC()
	return nil
}

// CanBeDeletedBy checks the same author-plus-window rule the delete
// operation enforces.
func (r *Response) CanBeDeletedBy(userID uint, now time.Time) error {
	if !r.IsAuthoredBy(userID) {
		return errors.NewForbiddenError("only the author can delete this response")
	}
	if !r.WithinAuthorWindow(now) {
		return errors.NewEditWindowExpiredError()
	}
	return nil
}
