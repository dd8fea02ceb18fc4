package dashboard

import "github.com/admitly/portal-service/internal/domain"

// Kind tags which view the resolver selected.
type Kind string

const (
	KindLoading                Kind = "loading"
	KindUnauthenticated        Kind = "unauthenticated"
	KindPermissionsUnavailable Kind = "permissions_unavailable"
	KindProfileMissing         Kind = "profile_missing"
	KindRoleNotSupported       Kind = "role_not_supported"
	KindDashboard              Kind = "dashboard"
)

// Dashboard enumerates the dashboard variants.
type Dashboard string

const (
	DashboardNone    Dashboard = "none"
	DashboardAdmin   Dashboard = "admin"
	DashboardPartner Dashboard = "partner"
	DashboardAgent   Dashboard = "agent"
	DashboardStudent Dashboard = "student"
)

// Message keys looked up in the i18n catalogs.
const (
	MsgLoading                = "dashboard.loading"
	MsgUnauthenticated        = "dashboard.unauthenticated"
	MsgPermissionsUnavailable = "dashboard.permissions_unavailable"
	MsgProfileMissing         = "dashboard.profile_missing"
	MsgNoRoles                = "dashboard.no_roles"
	MsgUnmappedRoles          = "dashboard.unmapped_roles"
	MsgWelcome                = "dashboard.welcome"
)

// Reasons attached to KindRoleNotSupported.
const (
	ReasonNoRoles       = "no_roles"
	ReasonUnmappedRoles = "unmapped_roles"
)

// Link is a navigation target offered by a view.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// View is the single outcome of a resolution.
type View struct {
	Kind       Kind
	Dashboard  Dashboard
	Role       domain.Role
	Reason     string
	MessageKey string
	Args       []any
	Retryable  bool
	Links      []Link
}

// Section is one entry of a dashboard's side navigation.
type Section struct {
	Key  string `json:"key"`
	Path string `json:"path"`
}

// Descriptor describes the shell a dashboard variant renders.
type Descriptor struct {
	Home     string    `json:"home"`
	Sections []Section `json:"sections"`
}

var descriptors = map[Dashboard]Descriptor{
	DashboardAdmin: {
		Home: "/dashboard/admin",
		Sections: []Section{
			{Key: "applications", Path: "/dashboard/applications"},
			{Key: "universities", Path: "/dashboard/universities"},
			{Key: "agents", Path: "/dashboard/agents"},
			{Key: "users", Path: "/dashboard/users"},
			{Key: "settings", Path: "/dashboard/settings"},
		},
	},
	DashboardPartner: {
		Home: "/dashboard/university",
		Sections: []Section{
			{Key: "programs", Path: "/dashboard/programs"},
			{Key: "applications", Path: "/dashboard/applications"},
			{Key: "offers", Path: "/dashboard/offers"},
			{Key: "settings", Path: "/dashboard/settings"},
		},
	},
	DashboardAgent: {
		Home: "/dashboard/agent",
		Sections: []Section{
			{Key: "my_students", Path: "/dashboard/my-students"},
			{Key: "applications", Path: "/dashboard/applications"},
			{Key: "tasks", Path: "/dashboard/tasks"},
			{Key: "commissions", Path: "/dashboard/commissions"},
			{Key: "settings", Path: "/dashboard/settings"},
		},
	},
	DashboardStudent: {
		Home: "/dashboard/student",
		Sections: []Section{
			{Key: "search", Path: "/dashboard/search"},
			{Key: "applications", Path: "/dashboard/applications"},
			{Key: "documents", Path: "/dashboard/documents"},
			{Key: "messages", Path: "/dashboard/messages"},
			{Key: "settings", Path: "/dashboard/settings"},
		},
	},
}

// Descriptor returns the shell for the variant. DashboardNone has none.
func (d Dashboard) Descriptor() (Descriptor, bool) {
	desc, ok := descriptors[d]
	return desc, ok
}
