package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/resolvia-inc/resolvia/internal/domain/article"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/mappers"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/models"
	"github.com/resolvia-inc/resolvia/internal/shared/db"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

type ArticleCategoryRepository struct {
	db     *gorm.DB
	mapper mappers.ArticleMapper
}

func NewArticleCategoryRepository(db *gorm.DB) *ArticleCategoryRepository {
	return &ArticleCategoryRepository{
		db:     db,
		mapper: mappers.NewArticleMapper(),
	}
}

func (r *ArticleCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*article.Category, error) {
	var model models.ArticleCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find article category: %w", err)
	}

	return r.mapper.CategoryToDomain(&model)
}

func (r *ArticleCategoryRepository) ListActive(ctx context.Context) ([]*article.Category, error) {
	var categoryModels []models.ArticleCategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list article categories: %w", err)
	}

	categories := make([]*article.Category, len(categoryModels))
	for i := range categoryModels {
		c, err := r.mapper.CategoryToDomain(&categoryModels[i])
		if err != nil {
			return nil, err
		}
		categories[i] = c
	}

	return categories, nil
}
