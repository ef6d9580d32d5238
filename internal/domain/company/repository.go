package company

import "context"

type CategoryRepository interface {
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
	ListByCompanyID(ctx context.Context, companyID uint, activeOnly bool) ([]*Category, error)
}

type AreaRepository interface {
	GetByID(ctx context.Context, areaID uint) (*Area, error)
	ListByCompanyID(ctx context.Context, companyID uint, activeOnly bool) ([]*Area, error)
}

// FollowRepository exposes the User-to-Company follow relation that drives
// which companies' published content a plain user may see.
type FollowRepository interface {
	IsFollowing(ctx context.Context, userID, companyID uint) (bool, error)
	FollowedCompanyIDs(ctx context.Context, userID uint) ([]uint, error)
}
