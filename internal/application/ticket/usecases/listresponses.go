package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type ListResponsesQuery struct {
	Principal identity.Principal
	TicketID  uint
}

type ListResponsesUseCase struct {
	ticketRepo   ticket.TicketRepository
	responseRepo ticket.ResponseRepository
	visibility   *authz.VisibilityResolver
	logger       logger.Interface
}

func NewListResponsesUseCase(
	ticketRepo ticket.TicketRepository,
	responseRepo ticket.ResponseRepository,
	visibility *authz.VisibilityResolver,
	logger logger.Interface,
) *ListResponsesUseCase {
	return &ListResponsesUseCase{
		ticketRepo:   ticketRepo,
		responseRepo: responseRepo,
		visibility:   visibility,
		logger:       logger,
	}
}

func (uc *ListResponsesUseCase) Execute(ctx context.Context, query ListResponsesQuery) ([]dto.ResponseDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.visibility.CanReadTicket(ctx, query.Principal, t); err != nil {
		return nil, err
	}

	responses, err := uc.responseRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	result := make([]dto.ResponseDTO, 0, len(responses))
	for _, r := range responses {
		result = append(result, dto.ToResponseDTO(r))
	}
	return result, nil
}
