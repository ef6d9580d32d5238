package company

import (
	"fmt"
	"time"
)

// Area is an optional departmental routing tag for tickets, predicted or
// manually chosen. Company-scoped like Category, with the same activation
// rule for new tickets.
type Area struct {
	id        uint
	companyID uint
	name      string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructArea(
	id uint,
	companyID uint,
	name string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Area, error) {
	if id == 0 {
		return nil, fmt.Errorf("area ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("area name is required")
	}

	return &Area{
		id:        id,
		companyID: companyID,
		name:      name,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Area) ID() uint {
	return a.id
}

func (a *Area) CompanyID() uint {
	return a.companyID
}

func (a *Area) Name() string {
	return a.name
}

func (a *Area) IsActive() bool {
	return a.isActive
}

func (a *Area) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Area) UpdatedAt() time.Time {
	return a.updatedAt
}

// AvailableFor reports whether a new ticket in the given company may route
// to this area.
func (a *Area) AvailableFor(companyID uint) bool {
	return a.isActive && a.companyID == companyID
}
