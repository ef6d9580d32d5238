package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/article/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/article"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

// UpdateArticleCommand rewrites the editable fields. Publication state, the
// view counter and authorship are immutable here no matter what the client
// sends.
type UpdateArticleCommand struct {
	Principal  identity.Principal
	ArticleID  uint
	CategoryID uint
	Title      string
	Excerpt    string
	Content    string
}

type UpdateArticleUseCase struct {
	articleRepo  article.ArticleRepository
	categoryRepo article.CategoryRepository
	visibility   *authz.VisibilityResolver
	txMgr        Transactor
	logger       logger.Interface
}

func NewUpdateArticleUseCase(
	articleRepo article.ArticleRepository,
	categoryRepo article.CategoryRepository,
	visibility *authz.VisibilityResolver,
	txMgr Transactor,
	logger logger.Interface,
) *UpdateArticleUseCase {
	return &UpdateArticleUseCase{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		visibility:   visibility,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *UpdateArticleUseCase) Execute(ctx context.Context, cmd UpdateArticleCommand) (*dto.ArticleDTO, error) {
	category, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsActive() {
		return nil, errors.NewValidationError("category is inactive")
	}

	var updated *article.Article
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.articleRepo.GetByIDForUpdate(txCtx, cmd.ArticleID)
		if err != nil {
			return err
		}

		if err := uc.visibility.CanManageArticle(cmd.Principal, a); err != nil {
			return err
		}

		if err := a.Update(cmd.CategoryID, cmd.Title, cmd.Excerpt, cmd.Content); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.articleRepo.Update(txCtx, a); err != nil {
			return err
		}

		updated = a
		return nil
	})
	if txErr != nil {
		uc.logger.Warnw("update article failed", "article_id", cmd.ArticleID, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("article updated", "article_id", updated.ID())
	result := dto.ToArticleDTO(updated, "")
	return &result, nil
}
