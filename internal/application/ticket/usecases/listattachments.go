package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type ListAttachmentsQuery struct {
	Principal identity.Principal
	TicketID  uint
}

type ListAttachmentsUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	visibility     *authz.VisibilityResolver
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	visibility *authz.VisibilityResolver,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		visibility:     visibility,
		logger:         logger,
	}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]dto.AttachmentDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.visibility.CanReadTicket(ctx, query.Principal, t); err != nil {
		return nil, err
	}

	attachments, err := uc.attachmentRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	result := make([]dto.AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		result = append(result, dto.ToAttachmentDTO(a))
	}
	return result, nil
}
