package usecases

import (
	"context"
	"io"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/biztime"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type UploadAttachmentCommand struct {
	Principal identity.Principal
	TicketID  uint
	// ResponseID scopes the attachment to one response; only the response
	// author may do this, and only while the authorial window is open.
	ResponseID *uint
	FileName   string
	MimeType   string
	SizeBytes  int64
	Content    io.Reader
}

type UploadAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	responseRepo   ticket.ResponseRepository
	attachmentRepo ticket.AttachmentRepository
	visibility     *authz.VisibilityResolver
	storage        FileStorage
	txMgr          Transactor
	logger         logger.Interface
}

func NewUploadAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	responseRepo ticket.ResponseRepository,
	attachmentRepo ticket.AttachmentRepository,
	visibility *authz.VisibilityResolver,
	storage FileStorage,
	txMgr Transactor,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		ticketRepo:     ticketRepo,
		responseRepo:   responseRepo,
		attachmentRepo: attachmentRepo,
		visibility:     visibility,
		storage:        storage,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*dto.AttachmentDTO, error) {
	if err := ticket.ValidateAttachmentFile(cmd.FileName, cmd.SizeBytes); err != nil {
		return nil, err
	}

	var attachment *ticket.Attachment
	var storagePath string

	// the row lock on the ticket serializes concurrent uploads so two
	// requests at count 4 cannot both slip under the cap
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if err := uc.visibility.CanReadTicket(txCtx, cmd.Principal, t); err != nil {
			return err
		}
		if t.Status().IsClosed() {
			return errors.NewTicketClosedError()
		}

		if cmd.ResponseID != nil {
			r, err := uc.responseRepo.GetByID(txCtx, *cmd.ResponseID)
			if err != nil {
				return err
			}
			if r.TicketID() != t.ID() {
				return errors.NewNotFoundError("response not found")
			}
			if !r.IsAuthoredBy(cmd.Principal.ID) {
				return errors.NewForbiddenError("only the response author can attach files to it")
			}
			if !r.WithinAuthorWindow(biztime.NowUTC()) {
				return errors.NewEditWindowExpiredError()
			}
		}

		count, err := uc.attachmentRepo.CountByTicketID(txCtx, t.ID())
		if err != nil {
			return err
		}
		if count >= ticket.MaxAttachmentsPerTicket {
			return errors.NewAttachmentLimitError()
		}

		storagePath, err = uc.storage.Store(txCtx, t.ID(), cmd.FileName, cmd.Content)
		if err != nil {
			uc.logger.Errorw("failed to store attachment", "ticket_id", t.ID(), "error", err)
			return errors.NewInternalError("failed to store attachment")
		}

		attachment, err = ticket.NewAttachment(
			t.ID(),
			cmd.ResponseID,
			cmd.Principal.ID,
			cmd.FileName,
			storagePath,
			cmd.MimeType,
			cmd.SizeBytes,
		)
		if err != nil {
			return err
		}

		return uc.attachmentRepo.Save(txCtx, attachment)
	})
	if txErr != nil {
		if storagePath != "" {
			if removeErr := uc.storage.Remove(ctx, storagePath); removeErr != nil {
				uc.logger.Warnw("failed to clean up orphaned blob", "path", storagePath, "error", removeErr)
			}
		}
		uc.logger.Warnw("attachment upload failed", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("attachment uploaded", "ticket_id", attachment.TicketID(), "attachment_id", attachment.ID())
	result := dto.ToAttachmentDTO(attachment)
	return &result, nil
}
