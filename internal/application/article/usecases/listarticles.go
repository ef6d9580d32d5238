package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/article/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/article"
	"github.com/resolvia-inc/resolvia/internal/domain/article/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var allowedArticleSortFields = map[string]bool{
	"created_at":   true,
	"updated_at":   true,
	"published_at": true,
	"views_count":  true,
	"title":        true,
}

type ListArticlesQuery struct {
	Principal  identity.Principal
	CompanyID  *uint
	CategoryID *uint
	// Status is the caller's explicit filter; when empty the visibility
	// resolver picks the role-based default.
	Status    string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ListArticlesResult struct {
	Articles []dto.ArticleListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListArticlesUseCase struct {
	articleRepo article.ArticleRepository
	visibility  *authz.VisibilityResolver
	logger      logger.Interface
}

func NewListArticlesUseCase(
	articleRepo article.ArticleRepository,
	visibility *authz.VisibilityResolver,
	logger logger.Interface,
) *ListArticlesUseCase {
	return &ListArticlesUseCase{
		articleRepo: articleRepo,
		visibility:  visibility,
		logger:      logger,
	}
}

func (uc *ListArticlesUseCase) Execute(ctx context.Context, query ListArticlesQuery) (*ListArticlesResult, error) {
	filter := article.ArticleFilter{
		CompanyID:  query.CompanyID,
		CategoryID: query.CategoryID,
		Search:     query.Search,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	if query.Status != "" {
		status, err := valueobjects.NewArticleStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter")
		}
		filter.Statuses = []valueobjects.ArticleStatus{status}
	}

	filter, err := uc.visibility.ScopeArticleList(ctx, query.Principal, filter)
	if err != nil {
		return nil, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	if filter.SortBy != "" && !allowedArticleSortFields[filter.SortBy] {
		return nil, errors.NewValidationError("unsupported sort field")
	}

	articles, total, err := uc.articleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list articles", "error", err)
		return nil, err
	}

	return &ListArticlesResult{
		Articles: dto.ToArticleListItemDTOs(articles),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
