package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/biztime"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type UpdateResponseCommand struct {
	Principal  identity.Principal
	TicketID   uint
	ResponseID uint
	Content    string
}

type UpdateResponseUseCase struct {
	ticketRepo   ticket.TicketRepository
	responseRepo ticket.ResponseRepository
	logger       logger.Interface
}

func NewUpdateResponseUseCase(
	ticketRepo ticket.TicketRepository,
	responseRepo ticket.ResponseRepository,
	logger logger.Interface,
) *UpdateResponseUseCase {
	return &UpdateResponseUseCase{
		ticketRepo:   ticketRepo,
		responseRepo: responseRepo,
		logger:       logger,
	}
}

func (uc *UpdateResponseUseCase) Execute(ctx context.Context, cmd UpdateResponseCommand) (*dto.ResponseDTO, error) {
	r, err := uc.responseRepo.GetByID(ctx, cmd.ResponseID)
	if err != nil {
		return nil, err
	}
	if r.TicketID() != cmd.TicketID {
		return nil, errors.NewNotFoundError("response not found")
	}

	// a closed ticket freezes its whole thread, even inside the authorial
	// edit window
	t, err := uc.ticketRepo.GetByID(ctx, r.TicketID())
	if err != nil {
		return nil, err
	}
	if t.Status().IsClosed() {
		return nil, errors.NewTicketClosedError()
	}

	if err := r.UpdateContent(cmd.Content, cmd.Principal.ID, biztime.NowUTC()); err != nil {
		uc.logger.Warnw("response edit rejected", "response_id", cmd.ResponseID, "error", err)
		return nil, err
	}

	if err := uc.responseRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	uc.logger.Infow("response updated", "response_id", r.ID())
	result := dto.ToResponseDTO(r)
	return &result, nil
}
