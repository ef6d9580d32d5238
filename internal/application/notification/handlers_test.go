package notification

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvia-inc/resolvia/internal/domain/article"
	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	articlevo "github.com/resolvia-inc/resolvia/internal/domain/article/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type sentEmail struct {
	To      string
	Subject string
}

type mockSender struct {
	TicketEmails  []sentEmail
	ArticleEmails []sentEmail
	FailFor       string
}

func (m *mockSender) SendTicketStatusEmail(to, ticketCode, subject, body string) error {
	if to == m.FailFor {
		return stderrors.New("smtp unavailable")
	}
	m.TicketEmails = append(m.TicketEmails, sentEmail{To: to, Subject: subject})
	return nil
}

func (m *mockSender) SendArticlePublishedEmail(to, companyName, articleTitle string, articleID uint) error {
	if to == m.FailFor {
		return stderrors.New("smtp unavailable")
	}
	m.ArticleEmails = append(m.ArticleEmails, sentEmail{To: to, Subject: articleTitle})
	return nil
}

type mockUsers struct {
	Emails map[uint]string
}

func (m *mockUsers) EmailByUserID(ctx context.Context, userID uint) (string, error) {
	email, ok := m.Emails[userID]
	if !ok {
		return "", stderrors.New("user not found")
	}
	return email, nil
}

type mockCompanies struct {
	Name      string
	Followers []uint
}

func (m *mockCompanies) NameByID(ctx context.Context, companyID uint) (string, error) {
	return m.Name, nil
}

func (m *mockCompanies) FollowerIDs(ctx context.Context, companyID uint) ([]uint, error) {
	return m.Followers, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                    {}
func (noopLogger) Info(msg string, args ...any)                     {}
func (noopLogger) Warn(msg string, args ...any)                     {}
func (noopLogger) Error(msg string, args ...any)                    {}
func (noopLogger) Fatal(msg string, args ...any)                    {}
func (noopLogger) With(args ...any) logger.Interface                { return noopLogger{} }
func (noopLogger) Named(name string) logger.Interface               { return noopLogger{} }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{})  {}

func resolvedEvent(t *testing.T) ticket.TicketResolvedEvent {
	t.Helper()
	return ticket.TicketResolvedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: "1",
			EventType:   ticket.EventTicketResolved,
			OccurredAt:  time.Now().UTC(),
			Version:     1,
		},
		TicketID:        1,
		Code:            "TKT-2026-00001",
		CreatedByUserID: 10,
		ResolvedBy:      20,
	}
}

func TestTicketEmailHandler_ResolvedMailsCreator(t *testing.T) {
	sender := &mockSender{}
	users := &mockUsers{Emails: map[uint]string{10: "creator@example.com"}}
	h := NewTicketEmailHandler(sender, users, noopLogger{})

	require.NoError(t, h.Handle(resolvedEvent(t)))
	require.Len(t, sender.TicketEmails, 1)
	assert.Equal(t, "creator@example.com", sender.TicketEmails[0].To)
	assert.Contains(t, sender.TicketEmails[0].Subject, "TKT-2026-00001")
}

func TestTicketEmailHandler_UserResponseNotMailed(t *testing.T) {
	sender := &mockSender{}
	users := &mockUsers{Emails: map[uint]string{10: "creator@example.com"}}
	h := NewTicketEmailHandler(sender, users, noopLogger{})

	event := ticket.ResponseAddedEvent{
		BaseEvent:       events.BaseEvent{EventType: ticket.EventResponseAdded, OccurredAt: time.Now().UTC(), Version: 1},
		TicketID:        1,
		Code:            "TKT-2026-00001",
		CreatedByUserID: 10,
		ResponseID:      5,
		AuthorID:        10,
		AuthorType:      "user",
	}
	require.NoError(t, h.Handle(event))
	assert.Empty(t, sender.TicketEmails)
}

func TestTicketEmailHandler_ReminderMailsCreator(t *testing.T) {
	sender := &mockSender{}
	users := &mockUsers{Emails: map[uint]string{
		10: "creator@example.com",
		20: "agent@example.com",
	}}
	h := NewTicketEmailHandler(sender, users, noopLogger{})

	event := ticket.ReminderRequestedEvent{
		BaseEvent:       events.BaseEvent{EventType: ticket.EventReminderRequested, OccurredAt: time.Now().UTC(), Version: 1},
		TicketID:        1,
		Code:            "TKT-2026-00001",
		RequestedBy:     20,
		CreatedByUserID: 10,
	}
	require.NoError(t, h.Handle(event))
	require.Len(t, sender.TicketEmails, 1)
	assert.Equal(t, "creator@example.com", sender.TicketEmails[0].To)
}

func TestTicketEmailHandler_TransportFailureSwallowed(t *testing.T) {
	sender := &mockSender{FailFor: "creator@example.com"}
	users := &mockUsers{Emails: map[uint]string{10: "creator@example.com"}}
	h := NewTicketEmailHandler(sender, users, noopLogger{})

	// a mail failure must never bubble back into the state change
	assert.NoError(t, h.Handle(resolvedEvent(t)))
}

func TestTicketEmailHandler_CanHandle(t *testing.T) {
	h := NewTicketEmailHandler(&mockSender{}, &mockUsers{}, noopLogger{})
	assert.True(t, h.CanHandle(ticket.EventTicketCreated))
	assert.True(t, h.CanHandle(ticket.EventReminderRequested))
	assert.False(t, h.CanHandle(article.EventArticlePublished))
}

func TestArticleEmailHandler_FanOutSkipsFailures(t *testing.T) {
	sender := &mockSender{FailFor: "second@example.com"}
	users := &mockUsers{Emails: map[uint]string{
		1: "first@example.com",
		2: "second@example.com",
		3: "third@example.com",
	}}
	companies := &mockCompanies{Name: "Acme", Followers: []uint{1, 2, 3, 4}}
	h := NewArticleEmailHandler(sender, users, companies, noopLogger{})

	now := time.Now().UTC()
	publishedAt := now
	a, err := article.ReconstructArticle(
		7, 1, 2, 3, "Maintenance window", "excerpt", "content",
		articlevo.StatusPublished, 0, &publishedAt, now, now,
	)
	require.NoError(t, err)

	require.NoError(t, h.Handle(article.NewArticlePublishedEvent(a, 2)))

	// follower 2 failed at the transport, follower 4 has no address
	require.Len(t, sender.ArticleEmails, 2)
	assert.Equal(t, "first@example.com", sender.ArticleEmails[0].To)
	assert.Equal(t, "third@example.com", sender.ArticleEmails[1].To)
}
