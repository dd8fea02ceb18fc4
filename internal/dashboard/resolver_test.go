package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admitly/portal-service/internal/domain"
)

func confirmedIdentity() *domain.Identity {
	now := time.Now()
	return &domain.Identity{ID: "0f0c5a7e-0000-4000-8000-000000000001", Email: "ana@example.com", EmailConfirmedAt: &now}
}

func readyInput(roles ...domain.Role) Input {
	return Input{
		Auth:    AuthState{Identity: confirmedIdentity()},
		Roles:   RoleState{Roles: roles},
		Profile: &domain.Profile{ID: "p1", FullName: "Ana Silva"},
	}
}

func TestResolveSingleRole(t *testing.T) {
	tests := []struct {
		role domain.Role
		want Dashboard
	}{
		{domain.RoleAdmin, DashboardAdmin},
		{domain.RoleStaff, DashboardAdmin},
		{domain.RolePartner, DashboardPartner},
		{domain.RoleAgent, DashboardAgent},
		{domain.RoleStudent, DashboardStudent},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			view := Resolve(readyInput(tt.role))
			assert.Equal(t, KindDashboard, view.Kind)
			assert.Equal(t, tt.want, view.Dashboard)
			assert.Equal(t, tt.role, view.Role)
			assert.Equal(t, []any{"Ana Silva"}, view.Args)
		})
	}
}

func TestResolvePriorityIgnoresOrder(t *testing.T) {
	tests := []struct {
		name  string
		roles []domain.Role
		want  domain.Role
	}{
		{"admin agent", []domain.Role{domain.RoleAdmin, domain.RoleAgent}, domain.RoleAdmin},
		{"agent admin", []domain.Role{domain.RoleAgent, domain.RoleAdmin}, domain.RoleAdmin},
		{"student staff", []domain.Role{domain.RoleStudent, domain.RoleStaff}, domain.RoleStaff},
		{"student agent partner", []domain.Role{domain.RoleStudent, domain.RoleAgent, domain.RolePartner}, domain.RolePartner},
		{"student agent", []domain.Role{domain.RoleStudent, domain.RoleAgent}, domain.RoleAgent},
		{"unknown and student", []domain.Role{"registrar", domain.RoleStudent}, domain.RoleStudent},
		{"all", []domain.Role{domain.RoleStudent, domain.RoleAgent, domain.RolePartner, domain.RoleStaff, domain.RoleAdmin}, domain.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Resolve(readyInput(tt.roles...))
			assert.Equal(t, KindDashboard, view.Kind)
			assert.Equal(t, tt.want, view.Role)
		})
	}
}

func TestResolveNoRolesAndUnmappedRolesDiffer(t *testing.T) {
	empty := Resolve(readyInput())
	unknown := Resolve(readyInput("unknown-label"))

	assert.Equal(t, KindRoleNotSupported, empty.Kind)
	assert.Equal(t, ReasonNoRoles, empty.Reason)
	assert.Equal(t, MsgNoRoles, empty.MessageKey)

	assert.Equal(t, KindRoleNotSupported, unknown.Kind)
	assert.Equal(t, ReasonUnmappedRoles, unknown.Reason)
	assert.Equal(t, MsgUnmappedRoles, unknown.MessageKey)
	assert.Equal(t, []any{"unknown-label"}, unknown.Args)

	assert.NotEqual(t, empty.MessageKey, unknown.MessageKey)
	assert.Equal(t, DashboardNone, empty.Dashboard)
}

func TestResolveFallbackOrder(t *testing.T) {
	fetchErr := errors.New("rpc timeout")

	t.Run("auth loading", func(t *testing.T) {
		in := readyInput(domain.RoleAdmin)
		in.Auth.Loading = true
		assert.Equal(t, KindLoading, Resolve(in).Kind)
	})

	t.Run("roles loading beats missing identity", func(t *testing.T) {
		in := Input{Roles: RoleState{Loading: true}}
		assert.Equal(t, KindLoading, Resolve(in).Kind)
	})

	t.Run("unauthenticated offers sign in", func(t *testing.T) {
		view := Resolve(Input{Roles: RoleState{Err: fetchErr}})
		assert.Equal(t, KindUnauthenticated, view.Kind)
		require.Len(t, view.Links, 1)
		assert.Equal(t, SignInPath, view.Links[0].Href)
	})

	t.Run("role error beats missing profile", func(t *testing.T) {
		in := readyInput(domain.RoleAdmin)
		in.Roles.Err = fetchErr
		in.Profile = nil
		view := Resolve(in)
		assert.Equal(t, KindPermissionsUnavailable, view.Kind)
		assert.True(t, view.Retryable)
	})

	t.Run("profile missing", func(t *testing.T) {
		in := readyInput(domain.RoleAdmin)
		in.Profile = nil
		view := Resolve(in)
		assert.Equal(t, KindProfileMissing, view.Kind)
		assert.False(t, view.Retryable)
	})
}

func TestDashboardDescriptor(t *testing.T) {
	view := Resolve(readyInput(domain.RoleAgent))
	desc, ok := view.Dashboard.Descriptor()
	require.True(t, ok)
	assert.Equal(t, "/dashboard/agent", desc.Home)
	assert.Equal(t, []Link{{Rel: "home", Href: "/dashboard/agent"}}, view.Links)

	_, ok = DashboardNone.Descriptor()
	assert.False(t, ok)
}

func TestHighestRole(t *testing.T) {
	_, ok := HighestRole(nil)
	assert.False(t, ok)

	role, ok := HighestRole(domain.RoleSet{domain.RoleAgent, domain.RolePartner})
	assert.True(t, ok)
	assert.Equal(t, domain.RolePartner, role)
}
