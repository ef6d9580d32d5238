package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/resolvia-inc/resolvia/internal/domain/company"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/mappers"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/models"
	"github.com/resolvia-inc/resolvia/internal/shared/db"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

type CategoryRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		mapper: mappers.NewCompanyMapper(),
	}
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID uint) (*company.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.CategoryToDomain(&model)
}

func (r *CategoryRepository) ListByCompanyID(ctx context.Context, companyID uint, activeOnly bool) ([]*company.Category, error) {
	var categoryModels []models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("company_id = ?", companyID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*company.Category, len(categoryModels))
	for i := range categoryModels {
		c, err := r.mapper.CategoryToDomain(&categoryModels[i])
		if err != nil {
			return nil, err
		}
		categories[i] = c
	}

	return categories, nil
}

type AreaRepository struct {
	db     *gorm.DB
	mapper mappers.CompanyMapper
}

func NewAreaRepository(db *gorm.DB) *AreaRepository {
	return &AreaRepository{
		db:     db,
		mapper: mappers.NewCompanyMapper(),
	}
}

func (r *AreaRepository) GetByID(ctx context.Context, areaID uint) (*company.Area, error) {
	var model models.AreaModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, areaID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("area not found")
		}
		return nil, fmt.Errorf("failed to find area: %w", err)
	}

	return r.mapper.AreaToDomain(&model)
}

func (r *AreaRepository) ListByCompanyID(ctx context.Context, companyID uint, activeOnly bool) ([]*company.Area, error) {
	var areaModels []models.AreaModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Where("company_id = ?", companyID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("name ASC").Find(&areaModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}

	areas := make([]*company.Area, len(areaModels))
	for i := range areaModels {
		a, err := r.mapper.AreaToDomain(&areaModels[i])
		if err != nil {
			return nil, err
		}
		areas[i] = a
	}

	return areas, nil
}

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{db: db}
}

func (r *FollowRepository) IsFollowing(ctx context.Context, userID, companyID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FollowModel{}).
		Where("user_id = ? AND company_id = ?", userID, companyID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return count > 0, nil
}

func (r *FollowRepository) FollowedCompanyIDs(ctx context.Context, userID uint) ([]uint, error) {
	var companyIDs []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FollowModel{}).
		Where("user_id = ?", userID).
		Pluck("company_id", &companyIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list followed companies: %w", err)
	}
	return companyIDs, nil
}
