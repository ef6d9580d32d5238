package usecases

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	vo "github.com/resolvia-inc/resolvia/internal/domain/ticket/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

func newUploadAttachmentUseCase(
	ticketRepo *mockTicketRepository,
	responseRepo *mockResponseRepository,
	attachmentRepo *mockAttachmentRepository,
	storage *mockFileStorage,
) *UploadAttachmentUseCase {
	return NewUploadAttachmentUseCase(ticketRepo, responseRepo, attachmentRepo, testVisibility(), storage, &mockTransactor{}, &mockLogger{})
}

func uploadCommand(ticketID uint) UploadAttachmentCommand {
	return UploadAttachmentCommand{
		Principal: userPrincipal(10),
		TicketID:  ticketID,
		FileName:  "error.log",
		MimeType:  "text/plain",
		SizeBytes: 2048,
		Content:   strings.NewReader("stack trace"),
	}
}

func TestUploadAttachmentUseCase_Success(t *testing.T) {
	tk := ticketInStatus(t, vo.StatusOpen, 1, 10)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	attachmentRepo := &mockAttachmentRepository{
		SaveFunc: func(ctx context.Context, a *ticket.Attachment) error { return a.SetID(7) },
	}
	storage := &mockFileStorage{}

	uc := newUploadAttachmentUseCase(ticketRepo, &mockResponseRepository{}, attachmentRepo, storage)
	result, err := uc.Execute(context.Background(), uploadCommand(1))
	require.NoError(t, err)

	assert.Equal(t, uint(7), result.ID)
	assert.Equal(t, "error.log", result.FileName)
	assert.Empty(t, storage.Removed)
}

func TestUploadAttachmentUseCase_LimitReached(t *testing.T) {
	tk := ticketInStatus(t, vo.StatusOpen, 1, 10)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	attachmentRepo := &mockAttachmentRepository{
		CountByTicketIDFunc: func(ctx context.Context, ticketID uint) (int64, error) {
			return ticket.MaxAttachmentsPerTicket, nil
		},
	}
	storage := &mockFileStorage{}

	uc := newUploadAttachmentUseCase(ticketRepo, &mockResponseRepository{}, attachmentRepo, storage)
	_, err := uc.Execute(context.Background(), uploadCommand(1))
	require.Error(t, err)
	assert.True(t, errors.IsDomainError(err, errors.CodeAttachmentLimitReached))
	// nothing hits blob storage once the quota check fails
	assert.Empty(t, storage.Removed)
}

func TestUploadAttachmentUseCase_ClosedTicketRejected(t *testing.T) {
	tk := ticketInStatus(t, vo.StatusClosed, 1, 10)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := newUploadAttachmentUseCase(ticketRepo, &mockResponseRepository{}, &mockAttachmentRepository{}, &mockFileStorage{})
	_, err := uc.Execute(context.Background(), uploadCommand(1))
	assert.True(t, errors.IsDomainError(err, errors.CodeTicketClosed))
}

func TestUploadAttachmentUseCase_ResponseScopeOnlyAuthor(t *testing.T) {
	tk := ticketInStatus(t, vo.StatusOpen, 1, 10)
	r, err := ticket.NewResponse(1, 20, vo.AuthorAgent, "have you tried turning it off")
	require.NoError(t, err)
	require.NoError(t, r.SetID(3))

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	responseRepo := &mockResponseRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Response, error) { return r, nil },
	}

	uc := newUploadAttachmentUseCase(ticketRepo, responseRepo, &mockAttachmentRepository{}, &mockFileStorage{})
	cmd := uploadCommand(1)
	cmd.ResponseID = uintPtr(3)
	_, err = uc.Execute(context.Background(), cmd)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUploadAttachmentUseCase_BlobCleanupOnSaveFailure(t *testing.T) {
	tk := ticketInStatus(t, vo.StatusOpen, 1, 10)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	attachmentRepo := &mockAttachmentRepository{
		SaveFunc: func(ctx context.Context, a *ticket.Attachment) error {
			return stderrors.New("duplicate entry")
		},
	}
	storage := &mockFileStorage{
		StoreFunc: func(ctx context.Context, ticketID uint, fileName string, content io.Reader) (string, error) {
			return "tickets/1/error.log", nil
		},
	}

	uc := newUploadAttachmentUseCase(ticketRepo, &mockResponseRepository{}, attachmentRepo, storage)
	_, err := uc.Execute(context.Background(), uploadCommand(1))
	require.Error(t, err)
	assert.Equal(t, []string{"tickets/1/error.log"}, storage.Removed)
}

type txMarkerKey struct{}

// markingTransactor tags the unit-of-work context so mocks can assert a
// call happened inside the transaction.
type markingTransactor struct{ Calls int }

func (m *markingTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(context.WithValue(ctx, txMarkerKey{}, true))
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txMarkerKey{}).(bool)
	return v
}

func TestUploadAttachmentUseCase_CapCheckedUnderRowLock(t *testing.T) {
	tk := ticketInStatus(t, vo.StatusOpen, 1, 10)
	lockedLoads := 0
	ticketRepo := &mockTicketRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			lockedLoads++
			assert.True(t, inTx(ctx), "ticket must be locked inside the transaction")
			return tk, nil
		},
	}
	attachmentRepo := &mockAttachmentRepository{
		CountByTicketIDFunc: func(ctx context.Context, ticketID uint) (int64, error) {
			assert.True(t, inTx(ctx), "cap check must run while the ticket row is locked")
			return ticket.MaxAttachmentsPerTicket - 1, nil
		},
		SaveFunc: func(ctx context.Context, a *ticket.Attachment) error {
			assert.True(t, inTx(ctx), "save must commit in the same transaction as the cap check")
			return a.SetID(7)
		},
	}
	tx := &markingTransactor{}

	uc := NewUploadAttachmentUseCase(ticketRepo, &mockResponseRepository{}, attachmentRepo, testVisibility(), &mockFileStorage{}, tx, &mockLogger{})
	result, err := uc.Execute(context.Background(), uploadCommand(1))
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.ID)
	assert.Equal(t, 1, tx.Calls)
	assert.Equal(t, 1, lockedLoads)
}

func TestUploadAttachmentUseCase_RejectsDisallowedExtension(t *testing.T) {
	uc := newUploadAttachmentUseCase(&mockTicketRepository{}, &mockResponseRepository{}, &mockAttachmentRepository{}, &mockFileStorage{})

	cmd := uploadCommand(1)
	cmd.FileName = "payload.exe"
	_, err := uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}
