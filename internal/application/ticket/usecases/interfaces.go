package usecases

import (
	"context"
	"io"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/dto"
)

// Transactor runs a unit of work atomically. Satisfied by
// db.TransactionManager in production.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AreaPredictor suggests a routing area for a new ticket from the category
// wording. A nil area with a nil error means no suggestion; prediction
// failures degrade to manual selection and never block creation.
type AreaPredictor interface {
	Predict(ctx context.Context, companyID uint, categoryName, categoryDescription string) (*uint, error)
}

// FileStorage persists attachment payloads. The returned path is opaque to
// the caller and stored on the attachment record.
type FileStorage interface {
	Store(ctx context.Context, ticketID uint, fileName string, content io.Reader) (string, error)
	Remove(ctx context.Context, storagePath string) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type ResolveTicketExecutor interface {
	Execute(ctx context.Context, cmd ResolveTicketCommand) (*dto.TicketDTO, error)
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*dto.TicketDTO, error)
}

type ReopenTicketExecutor interface {
	Execute(ctx context.Context, cmd ReopenTicketCommand) (*dto.TicketDTO, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error)
}

type AddResponseExecutor interface {
	Execute(ctx context.Context, cmd AddResponseCommand) (*dto.ResponseDTO, error)
}

type UpdateResponseExecutor interface {
	Execute(ctx context.Context, cmd UpdateResponseCommand) (*dto.ResponseDTO, error)
}

type DeleteResponseExecutor interface {
	Execute(ctx context.Context, cmd DeleteResponseCommand) error
}

type ListResponsesExecutor interface {
	Execute(ctx context.Context, query ListResponsesQuery) ([]dto.ResponseDTO, error)
}

type UploadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentCommand) (*dto.AttachmentDTO, error)
}

type DeleteAttachmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteAttachmentCommand) error
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, query ListAttachmentsQuery) ([]dto.AttachmentDTO, error)
}

type SendReminderExecutor interface {
	Execute(ctx context.Context, cmd SendReminderCommand) error
}
