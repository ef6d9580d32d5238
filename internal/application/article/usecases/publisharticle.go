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

type PublishArticleCommand struct {
	Principal identity.Principal
	ArticleID uint
}

type PublishArticleUseCase struct {
	articleRepo article.ArticleRepository
	visibility  *authz.VisibilityResolver
	txMgr       Transactor
	dispatcher  events.EventPublisher
	logger      logger.Interface
}

func NewPublishArticleUseCase(
	articleRepo article.ArticleRepository,
	visibility *authz.VisibilityResolver,
	txMgr Transactor,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *PublishArticleUseCase {
	return &PublishArticleUseCase{
		articleRepo: articleRepo,
		visibility:  visibility,
		txMgr:       txMgr,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (uc *PublishArticleUseCase) Execute(ctx context.Context, cmd PublishArticleCommand) (*dto.ArticleDTO, error) {
	var published *article.Article

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := uc.articleRepo.GetByIDForUpdate(txCtx, cmd.ArticleID)
		if err != nil {
			return err
		}

		if err := uc.visibility.CanManageArticle(cmd.Principal, a); err != nil {
			return err
		}

		if err := a.Publish(); err != nil {
			return err
		}

		if err := uc.articleRepo.Update(txCtx, a); err != nil {
			return err
		}

		published = a
		return nil
	})
	if txErr != nil {
		uc.logger.Warnw("publish article failed", "article_id", cmd.ArticleID, "error", txErr)
		return nil, txErr
	}

	if uc.dispatcher != nil {
		if err := uc.dispatcher.Publish(article.NewArticlePublishedEvent(published, cmd.Principal.ID)); err != nil {
			uc.logger.Warnw("failed to publish article published event", "article_id", published.ID(), "error", err)
		}
	}

	uc.logger.Infow("article published", "article_id", published.ID(), "published_by", cmd.Principal.ID)
	result := dto.ToArticleDTO(published, "")
	return &result, nil
}
