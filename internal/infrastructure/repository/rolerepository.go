package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/models"
	"github.com/resolvia-inc/resolvia/internal/shared/db"
)

// RoleRepository loads the role assignments that make up a principal.
type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) AssignmentsByUserID(ctx context.Context, userID uint) ([]identity.RoleAssignment, error) {
	var assignmentModels []models.RoleAssignmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		Find(&assignmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load role assignments: %w", err)
	}

	assignments := make([]identity.RoleAssignment, len(assignmentModels))
	for i, m := range assignmentModels {
		assignments[i] = identity.RoleAssignment{
			Code:      identity.RoleCode(m.RoleCode),
			CompanyID: m.CompanyID,
		}
	}
	return assignments, nil
}
