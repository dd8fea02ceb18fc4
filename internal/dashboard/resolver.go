// Package dashboard decides which dashboard a signed-in identity sees.
package dashboard

import (
	"strings"

	"github.com/admitly/portal-service/internal/domain"
)

// SignInPath is offered to unauthenticated callers.
const SignInPath = "/auth/sign-in"

// SupportPath is offered when data is inconsistent.
const SupportPath = "/support"

// AuthState is the identity provider's view of the session.
type AuthState struct {
	Identity *domain.Identity
	Loading  bool
}

// RoleState is the role provider's view of the identity.
type RoleState struct {
	Roles   domain.RoleSet
	Loading bool
	Err     error
}

// Input bundles everything a resolution depends on.
type Input struct {
	Auth    AuthState
	Roles   RoleState
	Profile *domain.Profile
}

// roleDashboards maps each recognized role to its variant. Admin and staff share one.
var roleDashboards = map[domain.Role]Dashboard{
	domain.RoleAdmin:   DashboardAdmin,
	domain.RoleStaff:   DashboardAdmin,
	domain.RolePartner: DashboardPartner,
	domain.RoleAgent:   DashboardAgent,
	domain.RoleStudent: DashboardStudent,
}

// Resolve selects exactly one view. The first matching rule wins.
// Unconfirmed identities are rejected upstream by the access gate.
func Resolve(in Input) View {
	switch {
	case in.Auth.Loading || in.Roles.Loading:
		return View{Kind: KindLoading, Dashboard: DashboardNone, MessageKey: MsgLoading}
	case in.Auth.Identity == nil:
		return View{
			Kind:       KindUnauthenticated,
			Dashboard:  DashboardNone,
			MessageKey: MsgUnauthenticated,
			Links:      []Link{{Rel: "sign-in", Href: SignInPath}},
		}
	case in.Roles.Err != nil:
		return View{
			Kind:       KindPermissionsUnavailable,
			Dashboard:  DashboardNone,
			MessageKey: MsgPermissionsUnavailable,
			Retryable:  true,
		}
	case in.Profile == nil:
		return View{
			Kind:       KindProfileMissing,
			Dashboard:  DashboardNone,
			MessageKey: MsgProfileMissing,
			Links:      []Link{{Rel: "support", Href: SupportPath}},
		}
	}

	if role, ok := HighestRole(in.Roles.Roles); ok {
		variant := roleDashboards[role]
		view := View{
			Kind:       KindDashboard,
			Dashboard:  variant,
			Role:       role,
			MessageKey: MsgWelcome,
			Args:       []any{in.Profile.FullName},
		}
		if desc, ok := variant.Descriptor(); ok {
			view.Links = []Link{{Rel: "home", Href: desc.Home}}
		}
		return view
	}

	if len(in.Roles.Roles) == 0 {
		return View{
			Kind:       KindRoleNotSupported,
			Dashboard:  DashboardNone,
			Reason:     ReasonNoRoles,
			MessageKey: MsgNoRoles,
			Links:      []Link{{Rel: "support", Href: SupportPath}},
		}
	}
	return View{
		Kind:       KindRoleNotSupported,
		Dashboard:  DashboardNone,
		Reason:     ReasonUnmappedRoles,
		MessageKey: MsgUnmappedRoles,
		Args:       []any{strings.Join(domain.RoleSet(in.Roles.Roles.Unknown()).Strings(), ", ")},
		Links:      []Link{{Rel: "support", Href: SupportPath}},
	}
}

// HighestRole returns the recognized role with the highest priority.
func HighestRole(roles domain.RoleSet) (domain.Role, bool) {
	for _, candidate := range domain.PriorityOrder {
		if roles.Has(candidate) {
			return candidate, true
		}
	}
	return "", false
}
