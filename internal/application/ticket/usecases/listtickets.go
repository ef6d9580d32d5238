package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	vo "github.com/resolvia-inc/resolvia/internal/domain/ticket/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

// OwnerFilterMe and OwnerFilterUnassigned are the symbolic owner_agent_id
// filter values accepted by the list endpoint.
const (
	OwnerFilterMe         = "me"
	OwnerFilterUnassigned = "unassigned"
)

type ListTicketsQuery struct {
	Principal identity.Principal
	CompanyID *uint
	Status    string
	Priority  string
	// Owner is an agent ID in decimal form, "me", or "unassigned".
	Owner      string
	CategoryID *uint
	AreaID     *uint
	Search     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

type ListTicketsResult struct {
	Tickets []dto.TicketListItemDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	visibility *authz.VisibilityResolver
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	visibility *authz.VisibilityResolver,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		visibility: visibility,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	filter, err = uc.visibility.ScopeTicketList(query.Principal, filter)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t))
	}

	return &ListTicketsResult{Tickets: items, Total: total}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.TicketFilter, error) {
	filter := ticket.TicketFilter{
		CompanyID:  query.CompanyID,
		CategoryID: query.CategoryID,
		AreaID:     query.AreaID,
		Search:     query.Search,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return ticket.TicketFilter{}, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority, err := vo.NewTicketPriority(query.Priority)
		if err != nil {
			return ticket.TicketFilter{}, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	switch query.Owner {
	case "":
	case OwnerFilterUnassigned:
		filter.Unassigned = true
	case OwnerFilterMe:
		agentID := query.Principal.ID
		filter.OwnerAgentID = &agentID
	default:
		agentID, err := parseUint(query.Owner)
		if err != nil {
			return ticket.TicketFilter{}, errors.NewValidationError("invalid owner filter")
		}
		filter.OwnerAgentID = &agentID
	}

	return filter, nil
}
