package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	vo "github.com/resolvia-inc/resolvia/internal/domain/ticket/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

func newSendReminderUseCase(repo *mockTicketRepository, dispatcher *mockDispatcher) *SendReminderUseCase {
	return NewSendReminderUseCase(repo, testVisibility(), dispatcher, &mockLogger{})
}

func TestSendReminderUseCase_AgentRemindsCreator(t *testing.T) {
	tk := ticketInStatus(t, vo.StatusPending, 1, 10)
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	dispatcher := &mockDispatcher{}
	uc := newSendReminderUseCase(repo, dispatcher)

	err := uc.Execute(context.Background(), SendReminderCommand{
		Principal: agentPrincipal(20, 1),
		TicketID:  1,
	})
	require.NoError(t, err)

	require.Len(t, dispatcher.Published, 1)
	reminder, ok := dispatcher.Published[0].(ticket.ReminderRequestedEvent)
	require.True(t, ok)
	// the mail goes to the ticket creator, not back to staff
	assert.Equal(t, uint(10), reminder.CreatedByUserID)
	assert.Equal(t, uint(20), reminder.RequestedBy)
}

func TestSendReminderUseCase_CompanyAdminAllowed(t *testing.T) {
	tk := ticketInStatus(t, vo.StatusOpen, 1, 10)
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	dispatcher := &mockDispatcher{}
	uc := newSendReminderUseCase(repo, dispatcher)

	err := uc.Execute(context.Background(), SendReminderCommand{
		Principal: adminPrincipal(21, 1),
		TicketID:  1,
	})
	require.NoError(t, err)
	require.Len(t, dispatcher.Published, 1)
}

func TestSendReminderUseCase_CreatorCannotSend(t *testing.T) {
	tk := ticketInStatus(t, vo.StatusPending, 1, 10)
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	dispatcher := &mockDispatcher{}
	uc := newSendReminderUseCase(repo, dispatcher)

	err := uc.Execute(context.Background(), SendReminderCommand{
		Principal: userPrincipal(10),
		TicketID:  1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	assert.Empty(t, dispatcher.Published)
}

func TestSendReminderUseCase_OtherCompanyAgentForbidden(t *testing.T) {
	tk := ticketInStatus(t, vo.StatusPending, 1, 10)
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := newSendReminderUseCase(repo, &mockDispatcher{})

	err := uc.Execute(context.Background(), SendReminderCommand{
		Principal: agentPrincipal(20, 2),
		TicketID:  1,
	})
	assert.True(t, errors.IsForbiddenError(err))
}

func TestSendReminderUseCase_ClosedTicketRejected(t *testing.T) {
	tk := ticketInStatus(t, vo.StatusClosed, 1, 10)
	repo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := newSendReminderUseCase(repo, &mockDispatcher{})

	err := uc.Execute(context.Background(), SendReminderCommand{
		Principal: agentPrincipal(20, 1),
		TicketID:  1,
	})
	assert.True(t, errors.IsDomainError(err, errors.CodeTicketClosed))
}
