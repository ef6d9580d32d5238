package notification

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/domain/article"
	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

// ArticleEmailHandler announces newly published articles to every follower
// of the publishing company. Fan-out is best effort: a bad address or a
// transport hiccup for one follower never stops the rest.
type ArticleEmailHandler struct {
	sender    EmailSender
	users     UserDirectory
	companies CompanyDirectory
	logger    logger.Interface
}

func NewArticleEmailHandler(
	sender EmailSender,
	users UserDirectory,
	companies CompanyDirectory,
	logger logger.Interface,
) *ArticleEmailHandler {
	return &ArticleEmailHandler{
		sender:    sender,
		users:     users,
		companies: companies,
		logger:    logger,
	}
}

func (h *ArticleEmailHandler) Subscribe(dispatcher events.EventSubscriber) error {
	return dispatcher.Subscribe(article.EventArticlePublished, h)
}

func (h *ArticleEmailHandler) CanHandle(eventType string) bool {
	return eventType == article.EventArticlePublished
}

func (h *ArticleEmailHandler) Handle(event events.DomainEvent) error {
	e, ok := event.(article.ArticlePublishedEvent)
	if !ok {
		return nil
	}

	ctx := context.Background()

	companyName, err := h.companies.NameByID(ctx, e.CompanyID)
	if err != nil {
		h.logger.Warnw("failed to resolve company for article announcement", "company_id", e.CompanyID, "error", err)
		return nil
	}

	followerIDs, err := h.companies.FollowerIDs(ctx, e.CompanyID)
	if err != nil {
		h.logger.Warnw("failed to list followers for article announcement", "company_id", e.CompanyID, "error", err)
		return nil
	}

	sent := 0
	for _, userID := range followerIDs {
		email, err := h.users.EmailByUserID(ctx, userID)
		if err != nil {
			h.logger.Warnw("skipping follower with unresolvable address", "user_id", userID, "error", err)
			continue
		}
		if err := h.sender.SendArticlePublishedEmail(email, companyName, e.Title, e.ArticleID); err != nil {
			h.logger.Warnw("failed to send article announcement", "to", email, "article_id", e.ArticleID, "error", err)
			continue
		}
		sent++
	}

	h.logger.Infow("article announcement fan-out finished", "article_id", e.ArticleID, "followers", len(followerIDs), "sent", sent)
	return nil
}
