package models

import "gorm.io/gorm"

type ArticleModel struct {
	ID          uint           `gorm:"primaryKey"`
	CompanyID   uint           `gorm:"not null;index"`
	AuthorID    uint           `gorm:"not null;index"`
	CategoryID  uint           `gorm:"not null;index"`
	Title       string         `gorm:"size:200;not null"`
	Excerpt     string         `gorm:"size:500;not null"`
	Content     string         `gorm:"type:longtext;not null"`
	Status      string         `gorm:"size:20;not null;index"`
	ViewsCount  uint           `gorm:"not null;default:0"`
	PublishedAt *int64         `gorm:"index"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:milli;not null"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (ArticleModel) TableName() string {
	return "help_center_articles"
}

// ArticleCategoryModel is the global help center taxonomy shared across
// companies.
type ArticleCategoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Slug      string `gorm:"uniqueIndex;size:120;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ArticleCategoryModel) TableName() string {
	return "article_categories"
}
