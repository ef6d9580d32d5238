package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/article/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/article"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type UnpublishArticleCommand struct {
	Principal identity.Principal
	ArticleID uint
}

type UnpublishArticleUseCase struct {
	articleRepo article.ArticleRepository
	visibility  *authz.VisibilityResolver
	txMgr       Transactor
	dispatcher  events.EventPublisher
	logger      logger.Interface
}

func NewUnpublishArticleUseCase(
	articleRepo article.ArticleRepository,
	visibility *authz.VisibilityResolver,
	txMgr Transactor,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *UnpublishArticleUseCase {
	return &UnpublishArticleUseCase{
		articleRepo: articleRepo,
		visibility:  visibility,
		txMgr:       txMgr,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *UnpublishArticleUseCase) Execute(ctx context.Context, cmd UnpublishArticleCommand) (*dto.ArticleDTO, error) {
	var unpublished *article.Article

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.articleRepo.GetByIDForUpdate(txCtx, cmd.ArticleID)
		if err != nil {
			return err
		}

		if err := uc.visibility.CanManageArticle(cmd.Principal, a); err != nil {
			return err
		}

		if err := a.Unpublish(); err != nil {
			return err
		}

		if err := uc.articleRepo.Update(txCtx, a); err != nil {
			return err
		}

		unpublished = a
		return nil
	})
	if txErr != nil {
		uc.logger.Warnw("unpublish article failed", "article_id", cmd.ArticleID, "error", txErr)
		return nil, txErr
	}

	if uc.dispatcher != nil {
		if err := uc.dispatcher.Publish(article.NewArticleUnpublishedEvent(unpublished, cmd.Principal.ID)); err != nil {
			uc.logger.Warnw("failed to publish article unpublished event", "article_id", unpublished.ID(), "error", err)
		}
	}

	uc.logger.Infow("article unpublished", "article_id", unpublished.ID(), "unpublished_by", cmd.Principal.ID)
	result := dto.ToArticleDTO(unpublished, "")
	return &result, nil
}
