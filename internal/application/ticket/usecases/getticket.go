package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type GetTicketQuery struct {
	Principal identity.Principal
	TicketID  uint
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	responseRepo   ticket.ResponseRepository
	attachmentRepo ticket.AttachmentRepository
	visibility     *authz.VisibilityResolver
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	responseRepo ticket.ResponseRepository,
	attachmentRepo ticket.AttachmentRepository,
	visibility *authz.VisibilityResolver,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		responseRepo:   responseRepo,
		attachmentRepo: attachmentRepo,
		visibility:     visibility,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.visibility.CanReadTicket(ctx, query.Principal, t); err != nil {
		uc.logger.Warnw("ticket access denied", "ticket_id", query.TicketID, "principal_id", query.Principal.ID)
		return nil, err
	}

	responses, err := uc.responseRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	attachments, err := uc.attachmentRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	return dto.ToTicketDTO(t, responses, attachments), nil
}
