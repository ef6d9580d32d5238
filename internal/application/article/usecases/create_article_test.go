package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvia-inc/resolvia/internal/domain/article"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

func TestCreateArticleUseCase_AlwaysCreatesDraft(t *testing.T) {
	var saved *article.Article
	articleRepo := &mockArticleRepository{
		SaveFunc: func(ctx context.Context, a *article.Article) error {
			saved = a
			return a.SetID(1)
		},
	}
	categoryRepo := &mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*article.Category, error) { return activeCategory(t), nil },
	}

	uc := NewCreateArticleUseCase(articleRepo, categoryRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateArticleCommand{
		Principal:  adminPrincipal(2, 1),
		CompanyID:  1,
		CategoryID: 3,
		Title:      "Welcome",
		Content:    "Read this first.",
	})
	require.NoError(t, err)

	assert.Equal(t, "DRAFT", result.Status)
	assert.Nil(t, result.PublishedAt)
	assert.Equal(t, uint(0), result.ViewsCount)
	require.NotNil(t, saved)
	assert.True(t, saved.Status().IsDraft())
}

func TestCreateArticleUseCase_ExcerptAutoGenerated(t *testing.T) {
	articleRepo := &mockArticleRepository{
		SaveFunc: func(ctx context.Context, a *article.Article) error { return a.SetID(1) },
	}
	categoryRepo := &mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*article.Category, error) { return activeCategory(t), nil },
	}

	uc := NewCreateArticleUseCase(articleRepo, categoryRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), CreateArticleCommand{
		Principal:  adminPrincipal(2, 1),
		CompanyID:  1,
		CategoryID: 3,
		Title:      "Welcome",
		Content:    "A short body.",
	})
	require.NoError(t, err)
	assert.Equal(t, "A short body.", result.Excerpt)
}

func TestCreateArticleUseCase_OnlyCompanyAdmins(t *testing.T) {
	uc := NewCreateArticleUseCase(&mockArticleRepository{}, &mockCategoryRepository{}, &mockLogger{})

	cmd := CreateArticleCommand{CompanyID: 1, CategoryID: 3, Title: "Welcome", Content: "body"}

	cmd.Principal = agentPrincipal(20, 1)
	_, err := uc.Execute(context.Background(), cmd)
	assert.True(t, errors.IsForbiddenError(err))

	cmd.Principal = userPrincipal(10)
	_, err = uc.Execute(context.Background(), cmd)
	assert.True(t, errors.IsForbiddenError(err))

	// admin of another company is no better than a stranger
	cmd.Principal = adminPrincipal(2, 9)
	_, err = uc.Execute(context.Background(), cmd)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateArticleUseCase_InactiveCategory(t *testing.T) {
	categoryRepo := &mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*article.Category, error) { return inactiveCategory(t), nil },
	}

	uc := NewCreateArticleUseCase(&mockArticleRepository{}, categoryRepo, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateArticleCommand{
		Principal:  adminPrincipal(2, 1),
		CompanyID:  1,
		CategoryID: 3,
		Title:      "Welcome",
		Content:    "body",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}
