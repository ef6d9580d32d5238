package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/company"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	vo "github.com/resolvia-inc/resolvia/internal/domain/ticket/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type UpdateTicketCommand struct {
	Principal  identity.Principal
	TicketID   uint
	Title      *string
	CategoryID *uint
	Priority   *string
	AreaID     *uint
	ClearArea  bool
}

type UpdateTicketUseCase struct {
	ticketRepo   ticket.TicketRepository
	categoryRepo company.CategoryRepository
	areaRepo     company.AreaRepository
	visibility   *authz.VisibilityResolver
	logger       logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	categoryRepo company.CategoryRepository,
	areaRepo company.AreaRepository,
	visibility *authz.VisibilityResolver,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:   ticketRepo,
		categoryRepo: categoryRepo,
		areaRepo:     areaRepo,
		visibility:   visibility,
		logger:       logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	isCreator := t.CreatedByUserID() == cmd.Principal.ID
	isStaff := uc.visibility.CanManageTicket(cmd.Principal, t) == nil

	if !isCreator && !isStaff {
		return nil, errors.NewForbiddenError("you do not have permission to update this ticket")
	}

	// creators may touch title and category only while the ticket is open;
	// staff additionally adjust priority and area on any non-closed ticket
	if isCreator && !isStaff {
		if !t.Status().IsOpen() {
			return nil, errors.NewForbiddenError("tickets can only be edited by their creator while open")
		}
		if cmd.Priority != nil || cmd.AreaID != nil || cmd.ClearArea {
			return nil, errors.NewForbiddenError("only agents can change priority or area")
		}
	}

	if cmd.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *cmd.CategoryID)
		if err != nil {
			return nil, err
		}
		if !category.AvailableFor(t.CompanyID()) {
			return nil, errors.NewValidationError("category is inactive or does not belong to this company")
		}
		if err := t.ChangeCategory(*cmd.CategoryID); err != nil {
			return nil, err
		}
	}

	if cmd.Title != nil {
		if err := t.UpdateTitle(*cmd.Title); err != nil {
			return nil, err
		}
	}

	if cmd.Priority != nil {
		priority, err := vo.NewTicketPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangePriority(priority); err != nil {
			return nil, err
		}
	}

	if cmd.ClearArea {
		if err := t.ChangeArea(nil); err != nil {
			return nil, err
		}
	} else if cmd.AreaID != nil {
		area, err := uc.areaRepo.GetByID(ctx, *cmd.AreaID)
		if err != nil {
			return nil, err
		}
		if !area.AvailableFor(t.CompanyID()) {
			return nil, errors.NewValidationError("area is inactive or does not belong to this company")
		}
		if err := t.ChangeArea(cmd.AreaID); err != nil {
			return nil, err
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID())
	return dto.ToTicketDTO(t, nil, nil), nil
}
