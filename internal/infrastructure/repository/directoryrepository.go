package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/models"
	"github.com/resolvia-inc/resolvia/internal/shared/db"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

// UserDirectory resolves recipient addresses for the email handlers.
type UserDirectory struct {
	db *gorm.DB
}

func NewUserDirectory(db *gorm.DB) *UserDirectory {
	return &UserDirectory{db: db}
}

func (d *UserDirectory) EmailByUserID(ctx context.Context, userID uint) (string, error) {
	var email string
	tx := db.GetTxFromContext(ctx, d.db)

	err := tx.
		Model(&models.UserModel{}).
		Where("id = ? AND is_active = ?", userID, true).
		Pluck("email", &email).Error
	if err != nil {
		return "", fmt.Errorf("failed to look up user email: %w", err)
	}
	if email == "" {
		return "", errors.NewNotFoundError("user not found")
	}
	return email, nil
}

// CompanyDirectory resolves company names and follower sets for article
// announcement fan-out.
type CompanyDirectory struct {
	db *gorm.DB
}

func NewCompanyDirectory(db *gorm.DB) *CompanyDirectory {
	return &CompanyDirectory{db: db}
}

func (d *CompanyDirectory) NameByID(ctx context.Context, companyID uint) (string, error) {
	var name string
	tx := db.GetTxFromContext(ctx, d.db)

	err := tx.
		Model(&models.CompanyModel{}).
		Where("id = ?", companyID).
		Pluck("name", &name).Error
	if err != nil {
		return "", fmt.Errorf("failed to look up company: %w", err)
	}
	if name == "" {
		return "", errors.NewNotFoundError("company not found")
	}
	return name, nil
}

func (d *CompanyDirectory) FollowerIDs(ctx context.Context, companyID uint) ([]uint, error) {
	var userIDs []uint
	tx := db.GetTxFromContext(ctx, d.db)

	if err := tx.
		Model(&models.FollowModel{}).
		Where("company_id = ?", companyID).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list company followers: %w", err)
	}
	return userIDs, nil
}
