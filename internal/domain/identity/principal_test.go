package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestPrincipal_Access(t *testing.T) {
	tests := []struct {
		name            string
		principal       Principal
		entityCompanyID uint
		expected        AccessLevel
	}{
		{
			name: "platform admin is always global",
			principal: NewPrincipal(1, []RoleAssignment{
				{Code: RolePlatformAdmin},
			}),
			entityCompanyID: 42,
			expected:        AccessGlobal,
		},
		{
			name: "company admin of same company",
			principal: NewPrincipal(2, []RoleAssignment{
				{Code: RoleCompanyAdmin, CompanyID: uintPtr(7)},
			}),
			entityCompanyID: 7,
			expected:        AccessSameCompany,
		},
		{
			name: "company admin of another company",
			principal: NewPrincipal(2, []RoleAssignment{
				{Code: RoleCompanyAdmin, CompanyID: uintPtr(7)},
			}),
			entityCompanyID: 8,
			expected:        AccessCrossCompany,
		},
		{
			name: "agent of same company",
			principal: NewPrincipal(3, []RoleAssignment{
				{Code: RoleAgent, CompanyID: uintPtr(5)},
			}),
			entityCompanyID: 5,
			expected:        AccessSameCompany,
		},
		{
			name: "plain user has no company scope",
			principal: NewPrincipal(4, []RoleAssignment{
				{Code: RoleUser},
			}),
			entityCompanyID: 5,
			expected:        AccessCrossCompany,
		},
		{
			name: "multiple assignments are never conflated",
			principal: NewPrincipal(5, []RoleAssignment{
				{Code: RoleCompanyAdmin, CompanyID: uintPtr(1)},
				{Code: RoleAgent, CompanyID: uintPtr(2)},
			}),
			entityCompanyID: 2,
			expected:        AccessSameCompany,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.principal.Access(tt.entityCompanyID))
		})
	}
}

func TestPrincipal_HasRoleInCompany(t *testing.T) {
	p := NewPrincipal(9, []RoleAssignment{
		{Code: RoleCompanyAdmin, CompanyID: uintPtr(1)},
		{Code: RoleAgent, CompanyID: uintPtr(2)},
	})

	assert.True(t, p.HasRoleInCompany(RoleCompanyAdmin, 1))
	assert.False(t, p.HasRoleInCompany(RoleCompanyAdmin, 2))
	assert.True(t, p.HasRoleInCompany(RoleAgent, 2))
	assert.False(t, p.HasRoleInCompany(RoleAgent, 1))
}

func TestPrincipal_IsCompanyStaff(t *testing.T) {
	agent := NewPrincipal(1, []RoleAssignment{{Code: RoleAgent, CompanyID: uintPtr(3)}})
	admin := NewPrincipal(2, []RoleAssignment{{Code: RoleCompanyAdmin, CompanyID: uintPtr(3)}})
	user := NewPrincipal(3, []RoleAssignment{{Code: RoleUser}})

	assert.True(t, agent.IsCompanyStaff(3))
	assert.True(t, admin.IsCompanyStaff(3))
	assert.False(t, agent.IsCompanyStaff(4))
	assert.False(t, user.IsCompanyStaff(3))
}
