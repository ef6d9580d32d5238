package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	vo "github.com/resolvia-inc/resolvia/internal/domain/ticket/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type AddResponseCommand struct {
	Principal identity.Principal
	TicketID  uint
	Content   string
}

type AddResponseUseCase struct {
	ticketRepo   ticket.TicketRepository
	responseRepo ticket.ResponseRepository
	visibility   *authz.VisibilityResolver
	txMgr        Transactor
	dispatcher   events.EventPublisher
	logger       logger.Interface
}

func NewAddResponseUseCase(
	ticketRepo ticket.TicketRepository,
	responseRepo ticket.ResponseRepository,
	visibility *authz.VisibilityResolver,
	txMgr Transactor,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *AddResponseUseCase {
	return &AddResponseUseCase{
		ticketRepo:   ticketRepo,
		responseRepo: responseRepo,
		visibility:   visibility,
		txMgr:        txMgr,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

func (uc *AddResponseUseCase) Execute(ctx context.Context, cmd AddResponseCommand) (*dto.ResponseDTO, error) {
	if len(cmd.Content) == 0 {
		return nil, errors.NewValidationError("content is required")
	}

	var response *ticket.Response
	var parent *ticket.Ticket

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if err := uc.visibility.CanReadTicket(txCtx, cmd.Principal, t); err != nil {
			return err
		}

		authorType := vo.AuthorUser
		if cmd.Principal.IsCompanyStaff(t.CompanyID()) || cmd.Principal.IsPlatformAdmin() {
			authorType = vo.AuthorAgent
		}

		r, err := ticket.NewResponse(t.ID(), cmd.Principal.ID, authorType, cmd.Content)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		// RecordResponse rejects closed tickets before anything persists
		if err := t.RecordResponse(authorType, r.CreatedAt()); err != nil {
			return err
		}

		if err := uc.responseRepo.Save(txCtx, r); err != nil {
			return err
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		response = r
		parent = t
		return nil
	})
	if txErr != nil {
		uc.logger.Warnw("add response failed", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, txErr
	}

	if uc.dispatcher != nil {
		if err := uc.dispatcher.Publish(ticket.NewResponseAddedEvent(parent, response)); err != nil {
			uc.logger.Warnw("failed to publish response added event", "ticket_id", parent.ID(), "error", err)
		}
	}

	uc.logger.Infow("response added", "ticket_id", parent.ID(), "response_id", response.ID())
	result := dto.ToResponseDTO(response)
	return &result, nil
}
