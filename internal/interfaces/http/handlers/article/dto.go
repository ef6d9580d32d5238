package article

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/resolvia-inc/resolvia/internal/application/article/usecases"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

type CreateArticleRequest struct {
	CompanyID  uint   `json:"company_id" binding:"required"`
	CategoryID uint   `json:"category_id" binding:"required"`
	Title      string `json:"title" binding:"required,max=200"`
	Excerpt    string `json:"excerpt" binding:"required,max=500"`
	Content    string `json:"content" binding:"required"`
}

func (r *CreateArticleRequest) ToCommand(principal identity.Principal) usecases.CreateArticleCommand {
	return usecases.CreateArticleCommand{
		Principal:  principal,
		CompanyID:  r.CompanyID,
		CategoryID: r.CategoryID,
		Title:      r.Title,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
	}
}

type UpdateArticleRequest struct {
	CategoryID uint   `json:"category_id" binding:"required"`
	Title      string `json:"title" binding:"required,max=200"`
	Excerpt    string `json:"excerpt" binding:"required,max=500"`
	Content    string `json:"content" binding:"required"`
}

type ListArticlesRequest struct {
	Page       int
	PageSize   int
	CompanyID  *uint
	CategoryID *uint
	Status     string
	Search     string
	SortBy     string
	SortOrder  string
}

func (r *ListArticlesRequest) ToQuery(principal identity.Principal) usecases.ListArticlesQuery {
	return usecases.ListArticlesQuery{
		Principal:  principal,
		CompanyID:  r.CompanyID,
		CategoryID: r.CategoryID,
		Status:     r.Status,
		Search:     r.Search,
		Page:       r.Page,
		PageSize:   r.PageSize,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
	}
}

func parseListArticlesRequest(c *gin.Context) (*ListArticlesRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListArticlesRequest{
		Page:      page,
		PageSize:  pageSize,
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	var err error
	if req.CompanyID, err = parseOptionalUintQuery(c, "company_id"); err != nil {
		return nil, err
	}
	if req.CategoryID, err = parseOptionalUintQuery(c, "category_id"); err != nil {
		return nil, err
	}

	return req, nil
}

func parseOptionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + name)
	}
	id := uint(v)
	return &id, nil
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError("invalid " + name)
	}
	return uint(v), nil
}
