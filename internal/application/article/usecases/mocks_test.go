package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/domain/article"
	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type mockArticleRepository struct {
	SaveFunc             func(ctx context.Context, a *article.Article) error
	UpdateFunc           func(ctx context.Context, a *article.Article) error
	SoftDeleteFunc       func(ctx context.Context, articleID uint) error
	GetByIDFunc          func(ctx context.Context, articleID uint) (*article.Article, error)
	GetByIDForUpdateFunc func(ctx context.Context, articleID uint) (*article.Article, error)
	ListFunc             func(ctx context.Context, filter article.ArticleFilter) ([]*article.Article, int64, error)
	IncrementViewsFunc   func(ctx context.Context, articleID uint) error
}

func (m *mockArticleRepository) Save(ctx context.Context, a *article.Article) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) Update(ctx context.Context, a *article.Article) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) SoftDelete(ctx context.Context, articleID uint) error {
	if m.SoftDeleteFunc != nil {
		return m.SoftDeleteFunc(ctx, articleID)
	}
	return nil
}

func (m *mockArticleRepository) GetByID(ctx context.Context, articleID uint) (*article.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, articleID)
	}
	return nil, nil
}

func (m *mockArticleRepository) GetByIDForUpdate(ctx context.Context, articleID uint) (*article.Article, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, articleID)
	}
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, articleID)
	}
	return nil, nil
}

func (m *mockArticleRepository) List(ctx context.Context, filter article.ArticleFilter) ([]*article.Article, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockArticleRepository) IncrementViews(ctx context.Context, articleID uint) error {
	if m.IncrementViewsFunc != nil {
		return m.IncrementViewsFunc(ctx, articleID)
	}
	return nil
}

type mockCategoryRepository struct {
	GetByIDFunc    func(ctx context.Context, categoryID uint) (*article.Category, error)
	ListActiveFunc func(ctx context.Context) ([]*article.Category, error)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*article.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) ListActive(ctx context.Context) ([]*article.Category, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}

type mockFollowRepository struct {
	IsFollowingFunc        func(ctx context.Context, userID, companyID uint) (bool, error)
	FollowedCompanyIDsFunc func(ctx context.Context, userID uint) ([]uint, error)
}

func (m *mockFollowRepository) IsFollowing(ctx context.Context, userID, companyID uint) (bool, error) {
	if m.IsFollowingFunc != nil {
		return m.IsFollowingFunc(ctx, userID, companyID)
	}
	return false, nil
}

func (m *mockFollowRepository) FollowedCompanyIDs(ctx context.Context, userID uint) ([]uint, error) {
	if m.FollowedCompanyIDsFunc != nil {
		return m.FollowedCompanyIDsFunc(ctx, userID)
	}
	return nil, nil
}

type mockTransactor struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockDispatcher struct {
	PublishFunc func(event events.DomainEvent) error
	Published   []events.DomainEvent
}

func (m *mockDispatcher) Publish(event events.DomainEvent) error {
	m.Published = append(m.Published, event)
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockDispatcher) PublishAll(evts []events.DomainEvent) error {
	for _, e := range evts {
		if err := m.Publish(e); err != nil {
			return err
		}
	}
	return nil
}

type mockRenderer struct {
	RenderFunc func(markdown string) (string, error)
}

func (m *mockRenderer) Render(markdown string) (string, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}

func (m *mockRenderer) Sanitize(htmlContent string) string {
	return htmlContent
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
