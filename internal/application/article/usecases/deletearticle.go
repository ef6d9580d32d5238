package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/domain/article"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type DeleteArticleCommand struct {
	Principal identity.Principal
	ArticleID uint
}

// DeleteArticleUseCase soft-deletes a draft. Published articles must be
// unpublished first; a second delete of the same article surfaces as
// not-found because the soft-deleted row is invisible to reads.
type DeleteArticleUseCase struct {
	articleRepo article.ArticleRepository
	visibility  *authz.VisibilityResolver
	txMgr       Transactor
	logger      logger.Interface
}

func NewDeleteArticleUseCase(
	articleRepo article.ArticleRepository,
	visibility *authz.VisibilityResolver,
	txMgr Transactor,
	logger logger.Interface,
) *DeleteArticleUseCase {
	return &DeleteArticleUseCase{
		articleRepo: articleRepo,
		visibility:  visibility,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *DeleteArticleUseCase) Execute(ctx context.Context, cmd DeleteArticleCommand) error {
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.articleRepo.GetByIDForUpdate(txCtx, cmd.ArticleID)
		if err != nil {
			return err
		}

		if err := uc.visibility.CanManageArticle(cmd.Principal, a); err != nil {
			return err
		}

		if err := a.CanBeDeleted(); err != nil {
			return err
		}

		return uc.articleRepo.SoftDelete(txCtx, a.ID())
	})
	if txErr != nil {
		uc.logger.Warnw("delete article failed", "article_id", cmd.ArticleID, "error", txErr)
		return txErr
	}

	uc.logger.Infow("article deleted", "article_id", cmd.ArticleID, "deleted_by", cmd.Principal.ID)
	return nil
}
