package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/usecases"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

type CreateTicketRequest struct {
	CompanyID   uint   `json:"company_id" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	AreaID      *uint  `json:"area_id,omitempty"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=10000"`
	Priority    string `json:"priority" binding:"required"`
}

func (r *CreateTicketRequest) ToCommand(principal identity.Principal) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Principal:   principal,
		CompanyID:   r.CompanyID,
		CategoryID:  r.CategoryID,
		AreaID:      r.AreaID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
	}
}

type UpdateTicketRequest struct {
	Title      *string `json:"title,omitempty" binding:"omitempty,max=200"`
	CategoryID *uint   `json:"category_id,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	AreaID     *uint   `json:"area_id,omitempty"`
	ClearArea  bool    `json:"clear_area,omitempty"`
}

type AssignTicketRequest struct {
	// AgentID of zero unassigns the ticket.
	AgentID uint `json:"agent_id"`
}

type AddResponseRequest struct {
	Content string `json:"content" binding:"required,max=10000"`
}

type UpdateResponseRequest struct {
	Content string `json:"content" binding:"required,max=10000"`
}

type ListTicketsRequest struct {
	Page       int
	PageSize   int
	CompanyID  *uint
	Status     string
	Priority   string
	Owner      string
	CategoryID *uint
	AreaID     *uint
	Search     string
	SortBy     string
	SortOrder  string
}

func (r *ListTicketsRequest) ToQuery(principal identity.Principal) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Principal:  principal,
		CompanyID:  r.CompanyID,
		Status:     r.Status,
		Priority:   r.Priority,
		Owner:      r.Owner,
		CategoryID: r.CategoryID,
		AreaID:     r.AreaID,
		Search:     r.Search,
		Page:       r.Page,
		PageSize:   r.PageSize,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTicketsRequest{
		Page:      page,
		PageSize:  pageSize,
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		Owner:     c.Query("owner"),
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
	if req.AreaID, err = parseOptionalUintQuery(c, "area_id"); err != nil {
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
