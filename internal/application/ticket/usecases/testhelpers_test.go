package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/company"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	vo "github.com/resolvia-inc/resolvia/internal/domain/ticket/valueobjects"
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

func ticketInStatus(t *testing.T, status vo.TicketStatus, companyID, creatorID uint) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	var resolvedAt, closedAt *time.Time
	if status == vo.StatusResolved {
		resolvedAt = &now
	}
	if status == vo.StatusClosed {
		closedAt = &now
	}
	tk, err := ticket.ReconstructTicket(
		1, "TKT-2026-00001", companyID, creatorID, nil, 3, nil,
		"Subject", "Body", status, vo.PriorityMedium, vo.AuthorNone,
		1, now, now, nil, resolvedAt, closedAt,
	)
	require.NoError(t, err)
	return tk
}

func activeCategory(t *testing.T, id, companyID uint) *company.Category {
	t.Helper()
	now := time.Now().UTC()
	c, err := company.ReconstructCategory(id, companyID, "Hardware", "Broken devices", true, now, now)
	require.NoError(t, err)
	return c
}

func inactiveCategory(t *testing.T, id, companyID uint) *company.Category {
	t.Helper()
	now := time.Now().UTC()
	c, err := company.ReconstructCategory(id, companyID, "Legacy", "", false, now, now)
	require.NoError(t, err)
	return c
}

func activeArea(t *testing.T, id, companyID uint) *company.Area {
	t.Helper()
	now := time.Now().UTC()
	a, err := company.ReconstructArea(id, companyID, "IT", true, now, now)
	require.NoError(t, err)
	return a
}
