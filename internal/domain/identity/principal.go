// Package identity models the acting principal of a request: the user
// identity plus the role assignments resolved from its access token.
// The principal is an immutable value passed explicitly into every
// operation; the engine never consults ambient session state.
package identity

// RoleCode identifies one of the four platform roles.
type RoleCode string

const (
	RoleUser          RoleCode = "USER"
	RoleAgent         RoleCode = "AGENT"
	RoleCompanyAdmin  RoleCode = "COMPANY_ADMIN"
	RolePlatformAdmin RoleCode = "PLATFORM_ADMIN"
)

// IsValid reports whether the role code is one of the known roles.
func (r RoleCode) IsValid() bool {
	switch r {
	case RoleUser, RoleAgent, RoleCompanyAdmin, RolePlatformAdmin:
		return true
	}
	return false
}

// RoleAssignment binds a role to a company scope. The USER role is global
// and carries no company; every other role is scoped to exactly one company.
type RoleAssignment struct {
	Code      RoleCode
	CompanyID *uint
}

// AccessLevel is the tenancy relation between a principal and an entity's company.
type AccessLevel int

const (
	AccessCrossCompany AccessLevel = iota
	AccessSameCompany
	AccessGlobal
)

// Principal is the acting identity for a single request. A principal may
// hold several role assignments (e.g. COMPANY_ADMIN for company A and
// AGENT for company B); the assignments are never conflated.
type Principal struct {
	ID    uint
	Roles []RoleAssignment
}

// NewPrincipal builds a principal from an id and role assignments.
func NewPrincipal(id uint, roles []RoleAssignment) Principal {
	rolesCopy := make([]RoleAssignment, len(roles))
	copy(rolesCopy, roles)
	return Principal{ID: id, Roles: rolesCopy}
}

// HasRole reports whether the principal holds the given role in any company.
func (p Principal) HasRole(code RoleCode) bool {
	for _, r := range p.Roles {
		if r.Code == code {
			return true
		}
	}
	return false
}

// HasRoleInCompany reports whether the principal holds the given role
// scoped to the given company.
func (p Principal) HasRoleInCompany(code RoleCode, companyID uint) bool {
	for _, r := range p.Roles {
		if r.Code == code && r.CompanyID != nil && *r.CompanyID == companyID {
			return true
		}
	}
	return false
}

// IsPlatformAdmin reports whether the principal holds the PLATFORM_ADMIN role.
func (p Principal) IsPlatformAdmin() bool {
	return p.HasRole(RolePlatformAdmin)
}

// IsCompanyStaff reports whether the principal is an AGENT or COMPANY_ADMIN
// of the given company.
func (p Principal) IsCompanyStaff(companyID uint) bool {
	return p.HasRoleInCompany(RoleAgent, companyID) || p.HasRoleInCompany(RoleCompanyAdmin, companyID)
}

// CompanyIDForRole returns the company scope of the first assignment of
// the given role, or nil when the principal does not hold it.
func (p Principal) CompanyIDForRole(code RoleCode) *uint {
	for _, r := range p.Roles {
		if r.Code == code {
			return r.CompanyID
		}
	}
	return nil
}

// StaffCompanyID returns the company the principal staffs, preferring the
// admin assignment, or nil for principals with no staff role.
func (p Principal) StaffCompanyID() *uint {
	if id := p.CompanyIDForRole(RoleCompanyAdmin); id != nil {
		return id
	}
	return p.CompanyIDForRole(RoleAgent)
}

// Access is the tenancy guard: it resolves the access level of the
// principal against the owning company of an entity. PLATFORM_ADMIN always
// resolves GLOBAL. The USER role carries no company scope; tenancy for
// users is decided by the follow relation in the visibility resolver,
// never here.
func (p Principal) Access(entityCompanyID uint) AccessLevel {
	if p.IsPlatformAdmin() {
		return AccessGlobal
	}
	for _, r := range p.Roles {
		if r.CompanyID != nil && *r.CompanyID == entityCompanyID {
			return AccessSameCompany
		}
	}
	return AccessCrossCompany
}
