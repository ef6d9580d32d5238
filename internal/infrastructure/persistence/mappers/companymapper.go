package mappers

import (
	"fmt"

	"github.com/resolvia-inc/resolvia/internal/domain/company"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/models"
)

type CompanyMapper interface {
	CategoryToDomain(model *models.CategoryModel) (*company.Category, error)
	AreaToDomain(model *models.AreaModel) (*company.Area, error)
}

type CompanyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

func (m *CompanyMapperImpl) CategoryToDomain(model *models.CategoryModel) (*company.Category, error) {
	c, err := company.ReconstructCategory(
		model.ID,
		model.CompanyID,
		model.Name,
		model.Description,
		model.IsActive,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct category (id=%d): %w", model.ID, err)
	}
	return c, nil
}

func (m *CompanyMapperImpl) AreaToDomain(model *models.AreaModel) (*company.Area, error) {
	a, err := company.ReconstructArea(
		model.ID,
		model.CompanyID,
		model.Name,
		model.IsActive,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct area (id=%d): %w", model.ID, err)
	}
	return a, nil
}
