package usecases

import (
	"context"
	"time"

	"github.com/resolvia-inc/resolvia/internal/domain/company"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	vo "github.com/resolvia-inc/resolvia/internal/domain/ticket/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type CreateTicketCommand struct {
	Principal   identity.Principal
	CompanyID   uint
	CategoryID  uint
	AreaID      *uint
	Title       string
	Description string
	Priority    string
}

type CreateTicketResult struct {
	TicketID  uint
	Code      string
	Status    string
	AreaID    *uint
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo    ticket.TicketRepository
	categoryRepo  company.CategoryRepository
	areaRepo      company.AreaRepository
	codeGenerator ticket.CodeGenerator
	areaPredictor AreaPredictor
	txMgr         Transactor
	dispatcher    events.EventPublisher
	logger        logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	categoryRepo company.CategoryRepository,
	areaRepo company.AreaRepository,
	codeGenerator ticket.CodeGenerator,
	areaPredictor AreaPredictor,
	txMgr Transactor,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:    ticketRepo,
		categoryRepo:  categoryRepo,
		areaRepo:      areaRepo,
		codeGenerator: codeGenerator,
		areaPredictor: areaPredictor,
		txMgr:         txMgr,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "company_id", cmd.CompanyID, "creator_id", cmd.Principal.ID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	category, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.AvailableFor(cmd.CompanyID) {
		return nil, errors.NewValidationError("category is inactive or does not belong to this company")
	}

	areaID := cmd.AreaID
	if areaID != nil {
		area, err := uc.areaRepo.GetByID(ctx, *areaID)
		if err != nil {
			return nil, err
		}
		if !area.AvailableFor(cmd.CompanyID) {
			return nil, errors.NewValidationError("area is inactive or does not belong to this company")
		}
	} else if uc.areaPredictor != nil {
		predicted, err := uc.areaPredictor.Predict(ctx, cmd.CompanyID, category.Name(), category.Description())
		if err != nil {
			// prediction is best-effort, the ticket is created without an area
			uc.logger.Warnw("area prediction failed", "company_id", cmd.CompanyID, "error", err)
		} else if predicted != nil {
			area, areaErr := uc.areaRepo.GetByID(ctx, *predicted)
			if areaErr == nil && area.AvailableFor(cmd.CompanyID) {
				areaID = predicted
			}
		}
	}

	newTicket, err := ticket.NewTicket(
		cmd.CompanyID,
		cmd.Principal.ID,
		cmd.CategoryID,
		areaID,
		cmd.Title,
		cmd.Description,
		vo.TicketPriority(cmd.Priority),
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		code, err := uc.codeGenerator.Generate(txCtx)
		if err != nil {
			return err
		}
		if err := newTicket.SetCode(code); err != nil {
			return err
		}
		return uc.ticketRepo.Save(txCtx, newTicket)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to save ticket", "error", txErr)
		return nil, txErr
	}

	if uc.dispatcher != nil {
		if err := uc.dispatcher.Publish(ticket.NewTicketCreatedEvent(newTicket)); err != nil {
			uc.logger.Warnw("failed to publish ticket created event", "ticket_id", newTicket.ID(), "error", err)
		}
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "code", newTicket.Code())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Code:      newTicket.Code(),
		Status:    newTicket.Status().String(),
		AreaID:    newTicket.AreaID(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if !cmd.Principal.HasRole(identity.RoleUser) {
		return errors.NewForbiddenError("only users can open tickets")
	}
	if cmd.CompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}
	if cmd.CategoryID == 0 {
		return errors.NewValidationError("category ID is required")
	}
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if !vo.TicketPriority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	return nil
}
