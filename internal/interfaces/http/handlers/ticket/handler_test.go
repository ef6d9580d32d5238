package ticket

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "github.com/resolvia-inc/resolvia/internal/application/ticket/dto"
	"github.com/resolvia-inc/resolvia/internal/application/ticket/usecases"
	"github.com/resolvia-inc/resolvia/internal/interfaces/http/handlers/testutil"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateTicketUC struct {
	result *usecases.CreateTicketResult
	err    error
	gotCmd usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result   *usecases.ListTicketsResult
	err      error
	gotQuery usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(_ context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, _ usecases.UpdateTicketCommand) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	err error
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, _ usecases.DeleteTicketCommand) error {
	return m.err
}

type mockResolveTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockResolveTicketUC) Execute(_ context.Context, _ usecases.ResolveTicketCommand) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockCloseTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockCloseTicketUC) Execute(_ context.Context, _ usecases.CloseTicketCommand) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockReopenTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockReopenTicketUC) Execute(_ context.Context, _ usecases.ReopenTicketCommand) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockAssignTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
	gotCmd usecases.AssignTicketCommand
}

func (m *mockAssignTicketUC) Execute(_ context.Context, cmd usecases.AssignTicketCommand) (*ticketdto.TicketDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockSendReminderUC struct {
	err error
}

func (m *mockSendReminderUC) Execute(_ context.Context, _ usecases.SendReminderCommand) error {
	return m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
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
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	return NewTicketHandler(
		deps.createTicketUC,
		deps.getTicketUC,
		deps.listTicketsUC,
		deps.updateTicketUC,
		deps.deleteTicketUC,
		deps.resolveTicketUC,
		deps.closeTicketUC,
		deps.reopenTicketUC,
		deps.assignTicketUC,
		deps.sendReminderUC,
		testutil.NewMockLogger(),
	)
}

// =====================================================================
// CreateTicket
// =====================================================================

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	mockUC := &mockCreateTicketUC{
		result: &usecases.CreateTicketResult{
			TicketID: 1,
			Code:     "TKT-2026-00001",
			Status:   "open",
		},
	}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{
		CompanyID:   1,
		CategoryID:  2,
		Title:       "Printer on fire",
		Description: "It is very much on fire",
		Priority:    "high",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	testutil.SetPrincipal(c, testutil.UserPrincipal(10))

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(10), mockUC.gotCmd.Principal.ID)
	assert.Equal(t, "Printer on fire", mockUC.gotCmd.Title)
}

func TestTicketHandler_CreateTicket_BindError(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	reqBody := map[string]string{"title": "only title"}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	testutil.SetPrincipal(c, testutil.UserPrincipal(10))

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestTicketHandler_CreateTicket_NotAuthenticated(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	reqBody := CreateTicketRequest{
		CompanyID:   1,
		CategoryID:  2,
		Title:       "Printer on fire",
		Description: "It is very much on fire",
		Priority:    "high",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	// No principal set

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTicketHandler_CreateTicket_UseCaseError(t *testing.T) {
	mockUC := &mockCreateTicketUC{
		err: errors.NewValidationError("invalid priority"),
	}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{
		CompanyID:   1,
		CategoryID:  2,
		Title:       "Printer on fire",
		Description: "It is very much on fire",
		Priority:    "critical-ish",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	testutil.SetPrincipal(c, testutil.UserPrincipal(10))

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

// =====================================================================
// GetTicket
// =====================================================================

func TestTicketHandler_GetTicket_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockGetTicketUC{
		result: &ticketdto.TicketDTO{
			ID:        1,
			Code:      "TKT-2026-00001",
			CompanyID: 1,
			Title:     "Printer on fire",
			Status:    "open",
			Priority:  "high",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/1", nil)
	testutil.SetPrincipal(c, testutil.UserPrincipal(10))
	testutil.SetURLParam(c, "id", "1")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	mockUC := &mockGetTicketUC{
		err: errors.NewNotFoundError("ticket not found"),
	}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/99", nil)
	testutil.SetPrincipal(c, testutil.UserPrincipal(10))
	testutil.SetURLParam(c, "id", "99")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_GetTicket_InvalidID(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/abc", nil)
	testutil.SetPrincipal(c, testutil.UserPrincipal(10))
	testutil.SetURLParam(c, "id", "abc")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// ListTickets
// =====================================================================

func TestTicketHandler_ListTickets_Success(t *testing.T) {
	mockUC := &mockListTicketsUC{
		result: &usecases.ListTicketsResult{
			Tickets: []ticketdto.TicketListItemDTO{
				{ID: 1, Code: "TKT-2026-00001", Status: "open"},
			},
			Total: 1,
		},
	}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetPrincipal(c, testutil.AgentPrincipal(5, 1))
	testutil.SetQueryParams(c, map[string]string{
		"status": "open",
		"owner":  "me",
	})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "open", mockUC.gotQuery.Status)
	assert.Equal(t, "me", mockUC.gotQuery.Owner)
}

func TestTicketHandler_ListTickets_InvalidCompanyID(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetPrincipal(c, testutil.UserPrincipal(10))
	testutil.SetQueryParams(c, map[string]string{"company_id": "banana"})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// Status transitions
// =====================================================================

func TestTicketHandler_ResolveTicket_InvalidTransition(t *testing.T) {
	mockUC := &mockResolveTicketUC{
		err: errors.NewInvalidTransitionError("resolved", "resolved"),
	}
	handler := newTestTicketHandler(testDeps{resolveTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/1/resolve", nil)
	testutil.SetPrincipal(c, testutil.AgentPrincipal(5, 1))
	testutil.SetURLParam(c, "id", "1")

	handler.ResolveTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, errors.CodeInvalidTransition, resp.Error.Code)
}

func TestTicketHandler_CloseTicket_Success(t *testing.T) {
	mockUC := &mockCloseTicketUC{
		result: &ticketdto.TicketDTO{ID: 1, Status: "closed"},
	}
	handler := newTestTicketHandler(testDeps{closeTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/1/close", nil)
	testutil.SetPrincipal(c, testutil.UserPrincipal(10))
	testutil.SetURLParam(c, "id", "1")

	handler.CloseTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTicketHandler_ReopenTicket_Forbidden(t *testing.T) {
	mockUC := &mockReopenTicketUC{
		err: errors.NewForbiddenError("only the creator or company staff may reopen"),
	}
	handler := newTestTicketHandler(testDeps{reopenTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/1/reopen", nil)
	testutil.SetPrincipal(c, testutil.UserPrincipal(99))
	testutil.SetURLParam(c, "id", "1")

	handler.ReopenTicket(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// =====================================================================
// AssignTicket
// =====================================================================

func TestTicketHandler_AssignTicket_Success(t *testing.T) {
	agentID := uint(7)
	mockUC := &mockAssignTicketUC{
		result: &ticketdto.TicketDTO{ID: 1, OwnerAgentID: &agentID},
	}
	handler := newTestTicketHandler(testDeps{assignTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/1/assign", AssignTicketRequest{AgentID: 7})
	testutil.SetPrincipal(c, testutil.CompanyAdminPrincipal(2, 1))
	testutil.SetURLParam(c, "id", "1")

	handler.AssignTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.gotCmd.AgentID)
}

func TestTicketHandler_AssignTicket_UnassignWithZero(t *testing.T) {
	mockUC := &mockAssignTicketUC{
		result: &ticketdto.TicketDTO{ID: 1},
	}
	handler := newTestTicketHandler(testDeps{assignTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/1/assign", AssignTicketRequest{AgentID: 0})
	testutil.SetPrincipal(c, testutil.CompanyAdminPrincipal(2, 1))
	testutil.SetURLParam(c, "id", "1")

	handler.AssignTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(0), mockUC.gotCmd.AgentID)
}

// =====================================================================
// SendReminder
// =====================================================================

func TestTicketHandler_SendReminder_Accepted(t *testing.T) {
	handler := newTestTicketHandler(testDeps{sendReminderUC: &mockSendReminderUC{}})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/1/reminder", nil)
	testutil.SetPrincipal(c, testutil.UserPrincipal(10))
	testutil.SetURLParam(c, "id", "1")

	handler.SendReminder(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

// =====================================================================
// DeleteTicket
// =====================================================================

func TestTicketHandler_DeleteTicket_NotClosed(t *testing.T) {
	mockUC := &mockDeleteTicketUC{
		err: errors.NewTicketNotClosedError("open"),
	}
	handler := newTestTicketHandler(testDeps{deleteTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/tickets/1", nil)
	testutil.SetPrincipal(c, testutil.CompanyAdminPrincipal(2, 1))
	testutil.SetURLParam(c, "id", "1")

	handler.DeleteTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, errors.CodeTicketNotClosed, resp.Error.Code)
}
