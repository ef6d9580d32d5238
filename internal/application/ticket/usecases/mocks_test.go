package usecases

import (
	"context"
	"io"

	"github.com/resolvia-inc/resolvia/internal/domain/company"
	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc             func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc           func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc           func(ctx context.Context, ticketID uint) error
	GetByIDFunc          func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByIDForUpdateFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByCodeFunc        func(ctx context.Context, code string) (*ticket.Ticket, error)
	ListFunc             func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByIDForUpdate(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, ticketID)
	}
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockResponseRepository struct {
	SaveFunc             func(ctx context.Context, r *ticket.Response) error
	UpdateFunc           func(ctx context.Context, r *ticket.Response) error
	DeleteFunc           func(ctx context.Context, responseID uint) error
	GetByIDFunc          func(ctx context.Context, responseID uint) (*ticket.Response, error)
	ListByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*ticket.Response, error)
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockResponseRepository) Save(ctx context.Context, r *ticket.Response) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockResponseRepository) Update(ctx context.Context, r *ticket.Response) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockResponseRepository) Delete(ctx context.Context, responseID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, responseID)
	}
	return nil
}

func (m *mockResponseRepository) GetByID(ctx context.Context, responseID uint) (*ticket.Response, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, responseID)
	}
	return nil, nil
}

func (m *mockResponseRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Response, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockResponseRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockAttachmentRepository struct {
	SaveFunc             func(ctx context.Context, a *ticket.Attachment) error
	DeleteFunc           func(ctx context.Context, attachmentID uint) error
	GetByIDFunc          func(ctx context.Context, attachmentID uint) (*ticket.Attachment, error)
	ListByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
	ListByResponseIDFunc func(ctx context.Context, responseID uint) ([]*ticket.Attachment, error)
	CountByTicketIDFunc  func(ctx context.Context, ticketID uint) (int64, error)
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, attachmentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, attachmentID)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*ticket.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, attachmentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) ListByResponseID(ctx context.Context, responseID uint) ([]*ticket.Attachment, error) {
	if m.ListByResponseIDFunc != nil {
		return m.ListByResponseIDFunc(ctx, responseID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) CountByTicketID(ctx context.Context, ticketID uint) (int64, error) {
	if m.CountByTicketIDFunc != nil {
		return m.CountByTicketIDFunc(ctx, ticketID)
	}
	return 0, nil
}

func (m *mockAttachmentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockCategoryRepository struct {
	GetByIDFunc         func(ctx context.Context, categoryID uint) (*company.Category, error)
	ListByCompanyIDFunc func(ctx context.Context, companyID uint, activeOnly bool) ([]*company.Category, error)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*company.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListByCompanyID(ctx context.Context, companyID uint, activeOnly bool) ([]*company.Category, error) {
	if m.ListByCompanyIDFunc != nil {
		return m.ListByCompanyIDFunc(ctx, companyID, activeOnly)
	}
	return nil, nil
}

type mockAreaRepository struct {
	GetByIDFunc         func(ctx context.Context, areaID uint) (*company.Area, error)
	ListByCompanyIDFunc func(ctx context.Context, companyID uint, activeOnly bool) ([]*company.Area, error)
}

func (m *mockAreaRepository) GetByID(ctx context.Context, areaID uint) (*company.Area, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, areaID)
	}
	return nil, nil
}

func (m *mockAreaRepository) ListByCompanyID(ctx context.Context, companyID uint, activeOnly bool) ([]*company.Area, error) {
	if m.ListByCompanyIDFunc != nil {
		return m.ListByCompanyIDFunc(ctx, companyID, activeOnly)
	}
	return nil, nil
}

type mockFollowRepository struct {
	IsFollowingFunc func(ctx context.Context, userID, companyID uint) (bool, error)
}

func (m *mockFollowRepository) IsFollowing(ctx context.Context, userID, companyID uint) (bool, error) {
	if m.IsFollowingFunc != nil {
		return m.IsFollowingFunc(ctx, userID, companyID)
	}
	return false, nil
}

func (m *mockFollowRepository) FollowedCompanyIDs(ctx context.Context, userID uint) ([]uint, error) {
	return nil, nil
}

// mockTransactor runs the unit of work inline.
type mockTransactor struct{}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockDispatcher struct {
	Published []events.DomainEvent
}

func (m *mockDispatcher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	return nil
}

func (m *mockDispatcher) PublishAll(evts []events.DomainEvent) error {
	m.Published = append(m.Published, evts...)
	return nil
}

type mockCodeGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockCodeGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "TKT-2026-00001", nil
}

type mockAreaPredictor struct {
	PredictFunc func(ctx context.Context, companyID uint, categoryName, categoryDescription string) (*uint, error)
}

func (m *mockAreaPredictor) Predict(ctx context.Context, companyID uint, categoryName, categoryDescription string) (*uint, error) {
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, companyID, categoryName, categoryDescription)
	}
	return nil, nil
}

type mockFileStorage struct {
	StoreFunc  func(ctx context.Context, ticketID uint, fileName string, content io.Reader) (string, error)
	RemoveFunc func(ctx context.Context, storagePath string) error
	Removed    []string
}

func (m *mockFileStorage) Store(ctx context.Context, ticketID uint, fileName string, content io.Reader) (string, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, ticketID, fileName, content)
	}
	return "tickets/1/stored", nil
}

func (m *mockFileStorage) Remove(ctx context.Context, storagePath string) error {
	m.Removed = append(m.Removed, storagePath)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, storagePath)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) Fatal(msg string, args ...any)                    {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{})  {}
