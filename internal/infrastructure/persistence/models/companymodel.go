package models

type CompanyModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Slug      string `gorm:"uniqueIndex;size:120;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CompanyModel) TableName() string {
	return "companies"
}

// CategoryModel is the company-scoped ticket classification.
type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	CompanyID   uint   `gorm:"not null;index"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:500"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (CategoryModel) TableName() string {
	return "ticket_categories"
}

type AreaModel struct {
	ID        uint   `gorm:"primaryKey"`
	CompanyID uint   `gorm:"not null;index"`
	Name      string `gorm:"size:100;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AreaModel) TableName() string {
	return "company_areas"
}

// FollowModel links a user to the companies whose published content they
// can see.
type FollowModel struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_follow_user_company"`
	CompanyID uint  `gorm:"not null;uniqueIndex:idx_follow_user_company;index"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (FollowModel) TableName() string {
	return "company_follows"
}

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Name      string `gorm:"size:200;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// RoleAssignmentModel carries a user's role, optionally scoped to one
// company. Platform admin rows have a NULL company_id.
type RoleAssignmentModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	RoleCode  string `gorm:"size:30;not null"`
	CompanyID *uint  `gorm:"index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (RoleAssignmentModel) TableName() string {
	return "role_assignments"
}
