package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/article/dto"
)

// Transactor runs a unit of work atomically. Satisfied by
// db.TransactionManager in production.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateArticleExecutor interface {
	Execute(ctx context.Context, cmd CreateArticleCommand) (*dto.ArticleDTO, error)
}

type GetArticleExecutor interface {
	Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error)
}

type ListArticlesExecutor interface {
	Execute(ctx context.Context, query ListArticlesQuery) (*ListArticlesResult, error)
}

type UpdateArticleExecutor interface {
	Execute(ctx context.Context, cmd UpdateArticleCommand) (*dto.ArticleDTO, error)
}

type PublishArticleExecutor interface {
	Execute(ctx context.Context, cmd PublishArticleCommand) (*dto.ArticleDTO, error)
}

type UnpublishArticleExecutor interface {
	Execute(ctx context.Context, cmd UnpublishArticleCommand) (*dto.ArticleDTO, error)
}

type DeleteArticleExecutor interface {
	Execute(ctx context.Context, cmd DeleteArticleCommand) error
}
