// Package article exposes the help center article API over HTTP.
package article

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resolvia-inc/resolvia/internal/application/article/usecases"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/interfaces/http/middleware"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
	"github.com/resolvia-inc/resolvia/internal/shared/utils"
)

type ArticleHandler struct {
	createArticleUC    usecases.CreateArticleExecutor
	getArticleUC       usecases.GetArticleExecutor
	listArticlesUC     usecases.ListArticlesExecutor
	updateArticleUC    usecases.UpdateArticleExecutor
	publishArticleUC   usecases.PublishArticleExecutor
	unpublishArticleUC usecases.UnpublishArticleExecutor
	deleteArticleUC    usecases.DeleteArticleExecutor
	logger             logger.Interface
}

func NewArticleHandler(
	createArticleUC usecases.CreateArticleExecutor,
	getArticleUC usecases.GetArticleExecutor,
	listArticlesUC usecases.ListArticlesExecutor,
	updateArticleUC usecases.UpdateArticleExecutor,
	publishArticleUC usecases.PublishArticleExecutor,
	unpublishArticleUC usecases.UnpublishArticleExecutor,
	deleteArticleUC usecases.DeleteArticleExecutor,
	logger logger.Interface,
) *ArticleHandler {
	return &ArticleHandler{
		createArticleUC:    createArticleUC,
		getArticleUC:       getArticleUC,
		listArticlesUC:     listArticlesUC,
		updateArticleUC:    updateArticleUC,
		publishArticleUC:   publishArticleUC,
		unpublishArticleUC: unpublishArticleUC,
		deleteArticleUC:    deleteArticleUC,
		logger:             logger,
	}
}

func requirePrincipal(c *gin.Context) (identity.Principal, bool) {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing caller identity"))
	}
	return principal, ok
}

// CreateArticle handles POST /articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create article", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createArticleUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Article created successfully")
}

// GetArticle handles GET /articles/:id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	articleID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getArticleUC.Execute(c.Request.Context(), usecases.GetArticleQuery{
		Principal: principal,
		ArticleID: articleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListArticles handles GET /articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	req, err := parseListArticlesRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listArticlesUC.Execute(c.Request.Context(), req.ToQuery(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Articles, result.Total, result.Page, result.PageSize)
}

// UpdateArticle handles PUT /articles/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	articleID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateArticleUC.Execute(c.Request.Context(), usecases.UpdateArticleCommand{
		Principal:  principal,
		ArticleID:  articleID,
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article updated successfully", result)
}

// PublishArticle handles POST /articles/:id/publish
func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	articleID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.publishArticleUC.Execute(c.Request.Context(), usecases.PublishArticleCommand{
		Principal: principal,
		ArticleID: articleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article published", result)
}

// UnpublishArticle handles POST /articles/:id/unpublish
func (h *ArticleHandler) UnpublishArticle(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	articleID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.unpublishArticleUC.Execute(c.Request.Context(), usecases.UnpublishArticleCommand{
		Principal: principal,
		ArticleID: articleID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article unpublished", result)
}

// DeleteArticle handles DELETE /articles/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	articleID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteArticleUC.Execute(c.Request.Context(), usecases.DeleteArticleCommand{
		Principal: principal,
		ArticleID: articleID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article deleted successfully", nil)
}
