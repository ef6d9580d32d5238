// Package ticket exposes the helpdesk ticket API over HTTP.
package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/usecases"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/interfaces/http/middleware"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
	"github.com/resolvia-inc/resolvia/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC  usecases.CreateTicketExecutor
	getTicketUC     usecases.GetTicketExecutor
	listTicketsUC   usecases.ListTicketsExecutor
	updateTicketUC  usecases.UpdateTicketExecutor
	deleteTicketUC  usecases.DeleteTicketExecutor
	resolveTicketUC usecases.ResolveTicketExecutor
	closeTicketUC   usecases.CloseTicketExecutor
	reopenTicketUC  usecases.ReopenTicketExecutor
	assignTicketUC  usecases.AssignTicketExecutor
	sendReminderUC  usecases.SendReminderExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	resolveTicketUC usecases.ResolveTicketExecutor,
	closeTicketUC usecases.CloseTicketExecutor,
	reopenTicketUC usecases.ReopenTicketExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	sendReminderUC usecases.SendReminderExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		getTicketUC:     getTicketUC,
		listTicketsUC:   listTicketsUC,
		updateTicketUC:  updateTicketUC,
		deleteTicketUC:  deleteTicketUC,
		resolveTicketUC: resolveTicketUC,
		closeTicketUC:   closeTicketUC,
		reopenTicketUC:  reopenTicketUC,
		assignTicketUC:  assignTicketUC,
		sendReminderUC:  sendReminderUC,
		logger:          logger,
	}
}

func requirePrincipal(c *gin.Context) (identity.Principal, bool) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
	}
	return principal, ok
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Principal: principal,
		TicketID:  ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Page, req.PageSize)
}

// UpdateTicket handles PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		Principal:  principal,
		TicketID:   ticketID,
		Title:      req.Title,
		CategoryID: req.CategoryID,
		Priority:   req.Priority,
		AreaID:     req.AreaID,
		ClearArea:  req.ClearArea,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		Principal: principal,
		TicketID:  ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", nil)
}

// ResolveTicket handles POST /tickets/:id/resolve
func (h *TicketHandler) ResolveTicket(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.resolveTicketUC.Execute(c.Request.Context(), usecases.ResolveTicketCommand{
		Principal: principal,
		TicketID:  ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket resolved", result)
}

// CloseTicket handles POST /tickets/:id/close
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.closeTicketUC.Execute(c.Request.Context(), usecases.CloseTicketCommand{
		Principal: principal,
		TicketID:  ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket closed", result)
}

// ReopenTicket handles POST /tickets/:id/reopen
func (h *TicketHandler) ReopenTicket(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reopenTicketUC.Execute(c.Request.Context(), usecases.ReopenTicketCommand{
		Principal: principal,
		TicketID:  ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket reopened", result)
}

// AssignTicket handles POST /tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		Principal: principal,
		TicketID:  ticketID,
		AgentID:   req.AgentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assignment updated", result)
}

// SendReminder handles POST /tickets/:id/reminder
func (h *TicketHandler) SendReminder(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.sendReminderUC.Execute(c.Request.Context(), usecases.SendReminderCommand{
		Principal: principal,
		TicketID:  ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusAccepted, "Reminder queued", nil)
}
