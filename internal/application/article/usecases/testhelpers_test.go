package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/resolvia-inc/resolvia/internal/domain/article"
	vo "github.com/resolvia-inc/resolvia/internal/domain/article/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
)

func uintPtr(v uint) *uint { return &v }

func userPrincipal(id uint) identity.Principal {
	return identity.NewPrincipal(id, []identity.RoleAssignment{{Code: identity.RoleUser}})
}

func agentPrincipal(id, companyID uint) identity.Principal {
	return identity.NewPrincipal(id, []identity.RoleAssignment{{Code: identity.RoleAgent, CompanyID: uintPtr(companyID)}})
}

func adminPrincipal(id, companyID uint) identity.Principal {
	return identity.NewPrincipal(id, []identity.RoleAssignment{{Code: identity.RoleCompanyAdmin, CompanyID: uintPtr(companyID)}})
}

func testVisibility() *authz.VisibilityResolver {
	return authz.NewVisibilityResolver(&mockFollowRepository{})
}

func draftArticle(t *testing.T, companyID uint) *article.Article {
	t.Helper()
	now := time.Now().UTC()
	a, err := article.ReconstructArticle(
		1, companyID, 2, 3,
		"Getting started", "How to open your first ticket", "Full walkthrough of the portal.",
		vo.StatusDraft, 0, nil, now, now,
	)
	require.NoError(t, err)
	return a
}

func publishedArticle(t *testing.T, companyID uint, views uint) *article.Article {
	t.Helper()
	now := time.Now().UTC()
	publishedAt := now.Add(-24 * time.Hour)
	a, err := article.ReconstructArticle(
		1, companyID, 2, 3,
		"Getting started", "How to open your first ticket", "Full walkthrough of the portal.",
		vo.StatusPublished, views, &publishedAt, now, now,
	)
	require.NoError(t, err)
	return a
}

func activeCategory(t *testing.T) *article.Category {
	t.Helper()
	now := time.Now().UTC()
	c, err := article.ReconstructCategory(3, "Guides", "guides", true, now, now)
	require.NoError(t, err)
	return c
}

func inactiveCategory(t *testing.T) *article.Category {
	t.Helper()
	now := time.Now().UTC()
	c, err := article.ReconstructCategory(3, "Legacy", "legacy", false, now, now)
	require.NoError(t, err)
	return c
}
