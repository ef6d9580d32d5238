package article

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	articledto "github.com/resolvia-inc/resolvia/internal/application/article/dto"
	"github.com/resolvia-inc/resolvia/internal/application/article/usecases"
	"github.com/resolvia-inc/resolvia/internal/interfaces/http/handlers/testutil"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

type mockCreateArticleUC struct {
	result *articledto.ArticleDTO
	err    error
	gotCmd usecases.CreateArticleCommand
}

func (m *mockCreateArticleUC) Execute(_ context.Context, cmd usecases.CreateArticleCommand) (*articledto.ArticleDTO, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetArticleUC struct {
	result *articledto.ArticleDTO
	err    error
}

func (m *mockGetArticleUC) Execute(_ context.Context, _ usecases.GetArticleQuery) (*articledto.ArticleDTO, error) {
	return m.result, m.err
}

type mockListArticlesUC struct {
	result   *usecases.ListArticlesResult
	err      error
	gotQuery usecases.ListArticlesQuery
}

func (m *mockListArticlesUC) Execute(_ context.Context, query usecases.ListArticlesQuery) (*usecases.ListArticlesResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockUpdateArticleUC struct {
	result *articledto.ArticleDTO
	err    error
}

func (m *mockUpdateArticleUC) Execute(_ context.Context, _ usecases.UpdateArticleCommand) (*articledto.ArticleDTO, error) {
	return m.result, m.err
}

type mockPublishArticleUC struct {
	result *articledto.ArticleDTO
	err    error
}

func (m *mockPublishArticleUC) Execute(_ context.Context, _ usecases.PublishArticleCommand) (*articledto.ArticleDTO, error) {
	return m.result, m.err
}

type mockUnpublishArticleUC struct {
	result *articledto.ArticleDTO
	err    error
}

func (m *mockUnpublishArticleUC) Execute(_ context.Context, _ usecases.UnpublishArticleCommand) (*articledto.ArticleDTO, error) {
	return m.result, m.err
}

type mockDeleteArticleUC struct {
	err error
}

func (m *mockDeleteArticleUC) Execute(_ context.Context, _ usecases.DeleteArticleCommand) error {
	return m.err
}

type testDeps struct {
	createArticleUC    usecases.CreateArticleExecutor
	getArticleUC       usecases.GetArticleExecutor
	listArticlesUC     usecases.ListArticlesExecutor
	updateArticleUC    usecases.UpdateArticleExecutor
	publishArticleUC   usecases.PublishArticleExecutor
	unpublishArticleUC usecases.UnpublishArticleExecutor
	deleteArticleUC    usecases.DeleteArticleExecutor
}

func newTestArticleHandler(deps testDeps) *ArticleHandler {
	return NewArticleHandler(
		deps.createArticleUC,
		deps.getArticleUC,
		deps.listArticlesUC,
		deps.updateArticleUC,
		deps.publishArticleUC,
		deps.unpublishArticleUC,
		deps.deleteArticleUC,
		testutil.NewMockLogger(),
	)
}

func draftArticleDTO() *articledto.ArticleDTO {
	now := time.Now().UTC()
	return &articledto.ArticleDTO{
		ID:         1,
		CompanyID:  1,
		AuthorID:   5,
		CategoryID: 3,
		Title:      "How to reset your password",
		Excerpt:    "Step by step password reset",
		Content:    "# Reset\n\nGo to settings.",
		Status:     "draft",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestArticleHandler_CreateArticle_Success(t *testing.T) {
	mockUC := &mockCreateArticleUC{result: draftArticleDTO()}
	handler := newTestArticleHandler(testDeps{createArticleUC: mockUC})

	reqBody := CreateArticleRequest{
		CompanyID:  1,
		CategoryID: 3,
		Title:      "How to reset your password",
		Excerpt:    "Step by step password reset",
		Content:    "# Reset\n\nGo to settings.",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/articles", reqBody)
	testutil.SetPrincipal(c, testutil.AgentPrincipal(5, 1))

	handler.CreateArticle(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(5), mockUC.gotCmd.Principal.ID)
	assert.Equal(t, uint(1), mockUC.gotCmd.CompanyID)
}

func TestArticleHandler_CreateArticle_BindError(t *testing.T) {
	handler := newTestArticleHandler(testDeps{})

	reqBody := map[string]any{"company_id": 1, "title": "missing the rest"}
	c, w := testutil.NewTestContext(http.MethodPost, "/articles", reqBody)
	testutil.SetPrincipal(c, testutil.AgentPrincipal(5, 1))

	handler.CreateArticle(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArticleHandler_CreateArticle_NotAuthenticated(t *testing.T) {
	handler := newTestArticleHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/articles", CreateArticleRequest{
		CompanyID:  1,
		CategoryID: 3,
		Title:      "t",
		Excerpt:    "e",
		Content:    "c",
	})

	handler.CreateArticle(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestArticleHandler_GetArticle_NotFound(t *testing.T) {
	mockUC := &mockGetArticleUC{err: errors.NewNotFoundError("article not found")}
	handler := newTestArticleHandler(testDeps{getArticleUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/articles/42", nil)
	testutil.SetPrincipal(c, testutil.UserPrincipal(10))
	testutil.SetURLParam(c, "id", "42")

	handler.GetArticle(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArticleHandler_ListArticles_Success(t *testing.T) {
	mockUC := &mockListArticlesUC{
		result: &usecases.ListArticlesResult{
			Articles: []articledto.ArticleListItemDTO{
				{ID: 1, CompanyID: 1, Title: "How to reset your password", Status: "published"},
			},
			Total:    1,
			Page:     1,
			PageSize: 20,
		},
	}
	handler := newTestArticleHandler(testDeps{listArticlesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/articles", nil)
	testutil.SetPrincipal(c, testutil.UserPrincipal(10))
	testutil.SetQueryParams(c, map[string]string{"status": "published", "search": "password"})

	handler.ListArticles(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "published", mockUC.gotQuery.Status)
	assert.Equal(t, "password", mockUC.gotQuery.Search)
}

func TestArticleHandler_UpdateArticle_Forbidden(t *testing.T) {
	mockUC := &mockUpdateArticleUC{
		err: errors.NewForbiddenError("only company staff may edit articles"),
	}
	handler := newTestArticleHandler(testDeps{updateArticleUC: mockUC})

	reqBody := UpdateArticleRequest{
		CategoryID: 3,
		Title:      "How to reset your password",
		Excerpt:    "Updated excerpt",
		Content:    "Updated content",
	}
	c, w := testutil.NewTestContext(http.MethodPut, "/articles/1", reqBody)
	testutil.SetPrincipal(c, testutil.UserPrincipal(10))
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateArticle(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestArticleHandler_PublishArticle_AlreadyPublished(t *testing.T) {
	mockUC := &mockPublishArticleUC{err: errors.NewArticleAlreadyPublishedError()}
	handler := newTestArticleHandler(testDeps{publishArticleUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/articles/1/publish", nil)
	testutil.SetPrincipal(c, testutil.CompanyAdminPrincipal(2, 1))
	testutil.SetURLParam(c, "id", "1")

	handler.PublishArticle(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, errors.CodeArticleAlreadyPublished, resp.Error.Code)
}

func TestArticleHandler_UnpublishArticle_Success(t *testing.T) {
	dto := draftArticleDTO()
	mockUC := &mockUnpublishArticleUC{result: dto}
	handler := newTestArticleHandler(testDeps{unpublishArticleUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/articles/1/unpublish", nil)
	testutil.SetPrincipal(c, testutil.CompanyAdminPrincipal(2, 1))
	testutil.SetURLParam(c, "id", "1")

	handler.UnpublishArticle(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestArticleHandler_DeleteArticle_Published(t *testing.T) {
	mockUC := &mockDeleteArticleUC{err: errors.NewCannotDeletePublishedArticleError()}
	handler := newTestArticleHandler(testDeps{deleteArticleUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/articles/1", nil)
	testutil.SetPrincipal(c, testutil.CompanyAdminPrincipal(2, 1))
	testutil.SetURLParam(c, "id", "1")

	handler.DeleteArticle(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, errors.CodeCannotDeletePublishedArticle, resp.Error.Code)
}
