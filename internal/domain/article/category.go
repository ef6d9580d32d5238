package article

import (
	"context"
	"fmt"
	"time"
)

// Category is a global help center classification. Unlike ticket categories
// it is shared across companies, so there is no tenancy check here.
type Category struct {
	id        uint
	name      string
	slug      string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructCategory(
	id uint,
	name string,
	slug string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("category name is required")
	}

	return &Category{
		id:        id,
		name:      name,
		slug:      slug,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Slug() string {
	return c.slug
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

type CategoryRepository interface {
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
	ListActive(ctx context.Context) ([]*Category, error)
}
