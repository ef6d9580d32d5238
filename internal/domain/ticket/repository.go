package ticket

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByIDForUpdate(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByCode(ctx context.Context, code string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

// TicketFilter narrows List. CompanyID is mandatory for company-scoped
// principals; the visibility resolver fills the creator restriction for
// plain users.
type TicketFilter struct {
	CompanyID       *uint
	Status          *valueobjects.TicketStatus
	Priority        *valueobjects.TicketPriority
	CategoryID      *uint
	AreaID          *uint
	CreatedByUserID *uint
	OwnerAgentID    *uint
	Unassigned      bool
	Search          string
	Page            int
	PageSize        int
	SortBy          string
	SortOrder       string
}

type ResponseRepository interface {
	Save(ctx context.Context, response *Response) error
	Update(ctx context.Context, response *Response) error
	Delete(ctx context.Context, responseID uint) error
	GetByID(ctx context.Context, responseID uint) (*Response, error)
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Response, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	Delete(ctx context.Context, attachmentID uint) error
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
	ListByResponseID(ctx context.Context, responseID uint) ([]*Attachment, error)
	CountByTicketID(ctx context.Context, ticketID uint) (int64, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
