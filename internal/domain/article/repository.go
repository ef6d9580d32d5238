package article

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/domain/article/valueobjects"
)

type ArticleRepository interface {
	Save(ctx context.Context, article *Article) error
	Update(ctx context.Context, article *Article) error
	// SoftDelete hides the article from every read path.
	SoftDelete(ctx context.Context, articleID uint) error
	GetByID(ctx context.Context, articleID uint) (*Article, error)
	GetByIDForUpdate(ctx context.Context, articleID uint) (*Article, error)
	List(ctx context.Context, filter ArticleFilter) ([]*Article, int64, error)
	// IncrementViews bumps views_count atomically in storage, guarded so the
	// increment only lands while the article is published.
	IncrementViews(ctx context.Context, articleID uint) error
}

// ArticleFilter narrows List. FollowedByUserID restricts to companies the
// user follows; Statuses carries the caller's explicit filter or the
// role-based default the visibility resolver picked.
type ArticleFilter struct {
	CompanyID        *uint
	CategoryID       *uint
	Statuses         []valueobjects.ArticleStatus
	FollowedByUserID *uint
	Search           string
	Page             int
	PageSize         int
	SortBy           string
	SortOrder        string
}
