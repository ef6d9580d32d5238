package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/usecases"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
	"github.com/resolvia-inc/resolvia/internal/shared/utils"
)

// ResponseHandler serves the conversation thread under a ticket.
type ResponseHandler struct {
	addResponseUC    usecases.AddResponseExecutor
	listResponsesUC  usecases.ListResponsesExecutor
	updateResponseUC usecases.UpdateResponseExecutor
	deleteResponseUC usecases.DeleteResponseExecutor
	logger           logger.Interface
}

func NewResponseHandler(
	addResponseUC usecases.AddResponseExecutor,
	listResponsesUC usecases.ListResponsesExecutor,
	updateResponseUC usecases.UpdateResponseExecutor,
	deleteResponseUC usecases.DeleteResponseExecutor,
	logger logger.Interface,
) *ResponseHandler {
	return &ResponseHandler{
		addResponseUC:    addResponseUC,
		listResponsesUC:  listResponsesUC,
		updateResponseUC: updateResponseUC,
		deleteResponseUC: deleteResponseUC,
		logger:           logger,
	}
}

// AddResponse handles POST /tickets/:id/responses
func (h *ResponseHandler) AddResponse(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add response", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.addResponseUC.Execute(c.Request.Context(), usecases.AddResponseCommand{
		Principal: principal,
		TicketID:  ticketID,
		Content:   req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Response added successfully")
}

// ListResponses handles GET /tickets/:id/responses
func (h *ResponseHandler) ListResponses(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listResponsesUC.Execute(c.Request.Context(), usecases.ListResponsesQuery{
		Principal: principal,
		TicketID:  ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateResponse handles PATCH /tickets/:id/responses/:responseID
func (h *ResponseHandler) UpdateResponse(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responseID, err := parseIDParam(c, "responseID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateResponseUC.Execute(c.Request.Context(), usecases.UpdateResponseCommand{
		Principal:  principal,
		TicketID:   ticketID,
		ResponseID: responseID,
		Content:    req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Response updated successfully", result)
}

// DeleteResponse handles DELETE /tickets/:id/responses/:responseID
func (h *ResponseHandler) DeleteResponse(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responseID, err := parseIDParam(c, "responseID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteResponseUC.Execute(c.Request.Context(), usecases.DeleteResponseCommand{
		Principal:  principal,
		TicketID:   ticketID,
		ResponseID: responseID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Response deleted successfully", nil)
}
