package mappers

import (
	"fmt"

	"github.com/resolvia-inc/resolvia/internal/domain/article"
	vo "github.com/resolvia-inc/resolvia/internal/domain/article/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/infrastructure/persistence/models"
)

type ArticleMapper interface {
	ToModel(a *article.Article) *models.ArticleModel
	ToDomain(model *models.ArticleModel) (*article.Article, error)
	CategoryToDomain(model *models.ArticleCategoryModel) (*article.Category, error)
}

type ArticleMapperImpl struct{}

func NewArticleMapper() ArticleMapper {
	return &ArticleMapperImpl{}
}

func (m *ArticleMapperImpl) ToModel(a *article.Article) *models.ArticleModel {
	return &models.ArticleModel{
		ID:          a.ID(),
		CompanyID:   a.CompanyID(),
		AuthorID:    a.AuthorID(),
		CategoryID:  a.CategoryID(),
		Title:       a.Title(),
		Excerpt:     a.Excerpt(),
		Content:     a.Content(),
		Status:      a.Status().String(),
		ViewsCount:  a.ViewsCount(),
		PublishedAt: timeToMillisPtr(a.PublishedAt()),
		CreatedAt:   a.CreatedAt().UnixMilli(),
		UpdatedAt:   a.UpdatedAt().UnixMilli(),
	}
}

func (m *ArticleMapperImpl) ToDomain(model *models.ArticleModel) (*article.Article, error) {
	status, err := vo.NewArticleStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid article status (id=%d): %w", model.ID, err)
	}

	a, err := article.ReconstructArticle(
		model.ID,
		model.CompanyID,
		model.AuthorID,
		model.CategoryID,
		model.Title,
		model.Excerpt,
		model.Content,
		status,
		model.ViewsCount,
		millisPtrToTime(model.PublishedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct article (id=%d): %w", model.ID, err)
	}
	return a, nil
}

func (m *ArticleMapperImpl) CategoryToDomain(model *models.ArticleCategoryModel) (*article.Category, error) {
	c, err := article.ReconstructCategory(
		model.ID,
		model.Name,
		model.Slug,
		model.IsActive,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct article category (id=%d): %w", model.ID, err)
	}
	return c, nil
}
