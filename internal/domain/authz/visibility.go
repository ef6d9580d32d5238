package authz

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/domain/article"
	articlevo "github.com/resolvia-inc/resolvia/internal/domain/article/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/domain/company"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

// VisibilityResolver is the single authorization gate for ticket and
// article reads and lists. It combines the tenancy guard, entity state and
// the follow relation, and keeps the forbidden/not-found contract: an
// entity that exists but sits outside the principal's visibility is a 403,
// never a 404.
type VisibilityResolver struct {
	follows company.FollowRepository
}

func NewVisibilityResolver(follows company.FollowRepository) *VisibilityResolver {
	return &VisibilityResolver{follows: follows}
}

// CanReadTicket grants access to the ticket creator, company staff of the
// ticket's company, and platform admins.
func (v *VisibilityResolver) CanReadTicket(ctx context.Context, principal identity.Principal, t *ticket.Ticket) error {
	if t.CreatedByUserID() == principal.ID {
		return nil
	}
	switch principal.Access(t.CompanyID()) {
	case identity.AccessGlobal:
		return nil
	case identity.AccessSameCompany:
		if principal.IsCompanyStaff(t.CompanyID()) {
			return nil
		}
	}
	return errors.NewForbiddenError("you do not have access to this ticket")
}

// ScopeTicketList narrows a ticket filter to what the principal may list.
// Plain users see only their own tickets; staff see their company; platform
// admins pass through unrestricted.
func (v *VisibilityResolver) ScopeTicketList(principal identity.Principal, filter ticket.TicketFilter) (ticket.TicketFilter, error) {
	if principal.IsPlatformAdmin() {
		return filter, nil
	}

	if filter.CompanyID != nil && principal.IsCompanyStaff(*filter.CompanyID) {
		return filter, nil
	}

	if companyID := principal.StaffCompanyID(); companyID != nil {
		filter.CompanyID = companyID
		return filter, nil
	}

	if principal.HasRole(identity.RoleUser) {
		// pinned to the user's own tickets; a company filter narrows
		// further rather than being discarded
		userID := principal.ID
		filter.CreatedByUserID = &userID
		return filter, nil
	}

	return ticket.TicketFilter{}, errors.NewForbiddenError("you do not have access to tickets")
}

// CanReadArticle applies the role matrix for a single article. Follow
// membership is only consulted for plain users.
func (v *VisibilityResolver) CanReadArticle(ctx context.Context, principal identity.Principal, a *article.Article) error {
	if principal.IsPlatformAdmin() {
		return nil
	}

	if principal.HasRoleInCompany(identity.RoleCompanyAdmin, a.CompanyID()) {
		return nil
	}

	if principal.HasRoleInCompany(identity.RoleAgent, a.CompanyID()) {
		if a.Status().IsPublished() {
			return nil
		}
		return errors.NewForbiddenError("you do not have access to this article")
	}

	if principal.HasRole(identity.RoleUser) && a.Status().IsPublished() {
		following, err := v.follows.IsFollowing(ctx, principal.ID, a.CompanyID())
		if err != nil {
			return err
		}
		if following {
			return nil
		}
	}

	return errors.NewForbiddenError("you do not have access to this article")
}

// ScopeArticleList narrows an article filter per role and applies the
// role-based default status filter: plain users and agents are pinned to
// PUBLISHED, company admins default to all statuses so drafts and published
// come back in one call.
func (v *VisibilityResolver) ScopeArticleList(ctx context.Context, principal identity.Principal, filter article.ArticleFilter) (article.ArticleFilter, error) {
	if principal.IsPlatformAdmin() {
		return filter, nil
	}

	if filter.CompanyID != nil && principal.HasRoleInCompany(identity.RoleCompanyAdmin, *filter.CompanyID) {
		return filter, nil
	}
	if filter.CompanyID != nil && principal.HasRoleInCompany(identity.RoleAgent, *filter.CompanyID) {
		filter.Statuses = []articlevo.ArticleStatus{articlevo.StatusPublished}
		return filter, nil
	}

	if companyID := principal.CompanyIDForRole(identity.RoleCompanyAdmin); companyID != nil {
		filter.CompanyID = companyID
		return filter, nil
	}
	if companyID := principal.CompanyIDForRole(identity.RoleAgent); companyID != nil {
		filter.CompanyID = companyID
		filter.Statuses = []articlevo.ArticleStatus{articlevo.StatusPublished}
		return filter, nil
	}

	if principal.HasRole(identity.RoleUser) {
		userID := principal.ID
		filter.FollowedByUserID = &userID
		filter.Statuses = []articlevo.ArticleStatus{articlevo.StatusPublished}
		return filter, nil
	}

	return article.ArticleFilter{}, errors.NewForbiddenError("you do not have access to articles")
}

// CanManageTicket authorizes the explicit agent actions. Staff of the
// ticket's company and platform admins qualify.
func (v *VisibilityResolver) CanManageTicket(principal identity.Principal, t *ticket.Ticket) error {
	if principal.IsPlatformAdmin() {
		return nil
	}
	if principal.IsCompanyStaff(t.CompanyID()) {
		return nil
	}
	return errors.NewForbiddenError("you do not have permission to manage this ticket")
}

// CanAdministerTicket authorizes company-admin-only operations such as the
// hard delete of a closed ticket.
func (v *VisibilityResolver) CanAdministerTicket(principal identity.Principal, t *ticket.Ticket) error {
	if principal.IsPlatformAdmin() {
		return nil
	}
	if principal.HasRoleInCompany(identity.RoleCompanyAdmin, t.CompanyID()) {
		return nil
	}
	return errors.NewForbiddenError("you do not have permission to administer this ticket")
}

// CanManageArticle authorizes the publication actions, restricted to
// company admins of the article's company and platform admins.
func (v *VisibilityResolver) CanManageArticle(principal identity.Principal, a *article.Article) error {
	if principal.IsPlatformAdmin() {
		return nil
	}
	if principal.HasRoleInCompany(identity.RoleCompanyAdmin, a.CompanyID()) {
		return nil
	}
	return errors.NewForbiddenError("you do not have permission to manage this article")
}
