package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/resolvia-inc/resolvia/internal/domain/article"
	vo "github.com/resolvia-inc/resolvia/internal/domain/article/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/mappers"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/models"
	"github.com/resolvia-inc/resolvia/internal/shared/db"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

var allowedArticleOrderByFields = map[string]bool{
	"id":           true,
	"title":        true,
	"created_at":   true,
	"updated_at":   true,
	"published_at": true,
	"views_count":  true,
}

type ArticleRepository struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{
		db:     db,
		mapper: mappers.NewArticleMapper(),
	}
}

func (r *ArticleRepository) Save(ctx context.Context, a *article.Article) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save article: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *ArticleRepository) Update(ctx context.Context, a *article.Article) error {
	model := r.mapper.ToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	// views_count is deliberately excluded: the counter only moves through
	// IncrementViews, so a stale in-memory copy cannot roll it back.
	result := tx.
		Model(&models.ArticleModel{}).
		Where("id = ?", model.ID).
		Select("category_id", "title", "excerpt", "content", "status",
			"published_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("article not found")
	}
	return nil
}

// SoftDelete hides the article from every read path. Deleting an already
// deleted article reports not-found.
func (r *ArticleRepository) SoftDelete(ctx context.Context, articleID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ArticleModel{}, articleID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete article: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("article not found")
	}
	return nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, articleID uint) (*article.Article, error) {
	return r.getOne(ctx, articleID, false)
}

func (r *ArticleRepository) GetByIDForUpdate(ctx context.Context, articleID uint) (*article.Article, error) {
	return r.getOne(ctx, articleID, true)
}

func (r *ArticleRepository) getOne(ctx context.Context, articleID uint, forUpdate bool) (*article.Article, error) {
	var model models.ArticleModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.First(&model, articleID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("article not found")
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// IncrementViews bumps the counter atomically in SQL. The status guard
// means a racing unpublish can never leave a draft with a moving counter,
// and two concurrent views both land (no lost updates).
func (r *ArticleRepository) IncrementViews(ctx context.Context, articleID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ArticleModel{}).
		Where("id = ? AND status = ?", articleID, vo.StatusPublished.String()).
		UpdateColumn("views_count", gorm.Expr("views_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment article views: %w", result.Error)
	}
	return nil
}

func (r *ArticleRepository) List(ctx context.Context, filter article.ArticleFilter) ([]*article.Article, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ArticleModel{})

	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = s.String()
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.FollowedByUserID != nil {
		query = query.Where(
			"company_id IN (?)",
			tx.Model(&models.FollowModel{}).Select("company_id").Where("user_id = ?", *filter.FollowedByUserID),
		)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR excerpt LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count articles: %w", err)
	}

	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedArticleOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var articleModels []models.ArticleModel
	if err := query.Find(&articleModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	articles := make([]*article.Article, len(articleModels))
	for i := range articleModels {
		a, err := r.mapper.ToDomain(&articleModels[i])
		if err != nil {
			return nil, 0, err
		}
		articles[i] = a
	}

	return articles, total, nil
}
