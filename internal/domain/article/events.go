package article

import (
	"fmt"

	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/shared/biztime"
)

const (
	EventArticlePublished   = "article.published"
	EventArticleUnpublished = "article.unpublished"
)

type ArticlePublishedEvent struct {
	events.BaseEvent
	ArticleID   uint
	CompanyID   uint
	Title       string
	PublishedBy uint
}

func NewArticlePublishedEvent(a *Article, publishedBy uint) ArticlePublishedEvent {
	return ArticlePublishedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("%d", a.ID()),
			EventType:   EventArticlePublished,
			OccurredAt:  biztime.NowUTC(),
			Version:     1,
		},
		ArticleID:   a.ID(),
		CompanyID:   a.CompanyID(),
		Title:       a.Title(),
		PublishedBy: publishedBy,
	}
}

type ArticleUnpublishedEvent struct {
	events.BaseEvent
	ArticleID     uint
	CompanyID     uint
	UnpublishedBy uint
}

func NewArticleUnpublishedEvent(a *Article, unpublishedBy uint) ArticleUnpublishedEvent {
	return ArticleUnpublishedEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("%d", a.ID()),
			EventType:   EventArticleUnpublished,
			OccurredAt:  biztime.NowUTC(),
			Version:     1,
		},
		ArticleID:     a.ID(),
		CompanyID:     a.CompanyID(),
		UnpublishedBy: unpublishedBy,
	}
}
