package dto

import (
	"time"

	"github.com/resolvia-inc/resolvia/internal/domain/article"
)

type ArticleDTO struct {
	ID          uint       `json:"id"`
	CompanyID   uint       `json:"company_id"`
	AuthorID    uint       `json:"author_id"`
	CategoryID  uint       `json:"category_id"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	ContentHTML string     `json:"content_html,omitempty"`
	Status      string     `json:"status"`
	ViewsCount  uint       `json:"views_count"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ArticleListItemDTO omits the body so list responses stay light.
type ArticleListItemDTO struct {
	ID          uint       `json:"id"`
	CompanyID   uint       `json:"company_id"`
	AuthorID    uint       `json:"author_id"`
	CategoryID  uint       `json:"category_id"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Status      string     `json:"status"`
	ViewsCount  uint       `json:"views_count"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToArticleDTO(a *article.Article, contentHTML string) ArticleDTO {
	return ArticleDTO{
		ID:          a.ID(),
		CompanyID:   a.CompanyID(),
		AuthorID:    a.AuthorID(),
		CategoryID:  a.CategoryID(),
		Title:       a.Title(),
		Excerpt:     a.Excerpt(),
		Content:     a.Content(),
		ContentHTML: contentHTML,
		Status:      a.Status().String(),
		ViewsCount:  a.ViewsCount(),
		PublishedAt: a.PublishedAt(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

func ToArticleListItemDTO(a *article.Article) ArticleListItemDTO {
	return ArticleListItemDTO{
		ID:          a.ID(),
		CompanyID:   a.CompanyID(),
		AuthorID:    a.AuthorID(),
		CategoryID:  a.CategoryID(),
		Title:       a.Title(),
		Excerpt:     a.Excerpt(),
		Status:      a.Status().String(),
		ViewsCount:  a.ViewsCount(),
		PublishedAt: a.PublishedAt(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

func ToArticleListItemDTOs(articles []*article.Article) []ArticleListItemDTO {
	items := make([]ArticleListItemDTO, 0, len(articles))
	for _, a := range articles {
		items = append(items, ToArticleListItemDTO(a))
	}
	return items
}
