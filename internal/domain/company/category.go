package company

import (
	"fmt"
	"time"
)

// Category is a company-scoped ticket classification. Inactive categories
// are rejected for new tickets but stay valid on tickets already linked.
type Category struct {
	id          uint
	companyID   uint
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructCategory(
	id uint,
	companyID uint,
	name string,
	description string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("category name is required")
	}

	return &Category{
		id:          id,
		companyID:   companyID,
		name:        name,
		description: description,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) CompanyID() uint {
	return c.companyID
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) IsActive() bool {
	return c.isActive
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

// AvailableFor reports whether a new ticket in the given company may use
// this category.
func (c *Category) AvailableFor(companyID uint) bool {
	return c.isActive && c.companyID == companyID
}
