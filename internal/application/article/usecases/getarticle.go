package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/article/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/article"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
	"github.com/resolvia-inc/resolvia/internal/shared/services/markdown"
)

type GetArticleQuery struct {
	Principal identity.Principal
	ArticleID uint
}

// GetArticleUseCase serves a single article read. Every authorized read of a
// published article counts as a view; there is no per-principal
// deduplication. Draft reads by staff never touch the counter.
type GetArticleUseCase struct {
	articleRepo article.ArticleRepository
	visibility  *authz.VisibilityResolver
	renderer    markdown.Renderer
	logger      logger.Interface
}

func NewGetArticleUseCase(
	articleRepo article.ArticleRepository,
	visibility *authz.VisibilityResolver,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetArticleUseCase {
	return &GetArticleUseCase{
		articleRepo: articleRepo,
		visibility:  visibility,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetArticleUseCase) Execute(ctx context.Context, query GetArticleQuery) (*dto.ArticleDTO, error) {
	a, err := uc.articleRepo.GetByID(ctx, query.ArticleID)
	if err != nil {
		return nil, err
	}

	if err := uc.visibility.CanReadArticle(ctx, query.Principal, a); err != nil {
		return nil, err
	}

	if a.Status().IsPublished() {
		// the increment is guarded in storage so a concurrent unpublish
		// cannot produce a draft with a moving counter
		if err := uc.articleRepo.IncrementViews(ctx, a.ID()); err != nil {
			uc.logger.Warnw("failed to increment article views", "article_id", a.ID(), "error", err)
		} else {
			a.RecordView()
		}
	}

	contentHTML := ""
	if uc.renderer != nil {
		html, renderErr := uc.renderer.Render(a.Content())
		if renderErr != nil {
			uc.logger.Warnw("failed to render article content", "article_id", a.ID(), "error", renderErr)
		} else {
			contentHTML = html
		}
	}

	result := dto.ToArticleDTO(a, contentHTML)
	return &result, nil
}
