package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/biztime"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type DeleteAttachmentCommand struct {
	Principal    identity.Principal
	TicketID     uint
	AttachmentID uint
}

type DeleteAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	storage        FileStorage
	logger         logger.Interface
}

func NewDeleteAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	storage FileStorage,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		logger:         logger,
	}
}

func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) error {
	a, err := uc.attachmentRepo.GetByID(ctx, cmd.AttachmentID)
	if err != nil {
		return err
	}
	if a.TicketID() != cmd.TicketID {
		return errors.NewNotFoundError("attachment not found")
	}

	// a closed ticket freezes its whole thread, even inside the uploader's
	// delete window
	t, err := uc.ticketRepo.GetByID(ctx, a.TicketID())
	if err != nil {
		return err
	}
	if t.Status().IsClosed() {
		return errors.NewTicketClosedError()
	}

	if err := a.CanBeDeletedBy(cmd.Principal.ID, biztime.NowUTC()); err != nil {
		uc.logger.Warnw("attachment delete rejected", "attachment_id", cmd.AttachmentID, "error", err)
		return err
	}

	if err := uc.attachmentRepo.Delete(ctx, a.ID()); err != nil {
		return err
	}

	if err := uc.storage.Remove(ctx, a.StoragePath()); err != nil {
		uc.logger.Warnw("failed to remove attachment blob", "path", a.StoragePath(), "error", err)
	}

	uc.logger.Infow("attachment deleted", "attachment_id", cmd.AttachmentID)
	return nil
}
