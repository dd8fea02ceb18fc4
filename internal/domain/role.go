package domain

import "strings"

// Role is an authorization label bound to an identity.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RolePartner Role = "partner"
	RoleAgent   Role = "agent"
	RoleStudent Role = "student"
)

// PriorityOrder ranks recognized roles from highest to lowest. It decides
// which dashboard a multi-role identity sees; changing it needs a migration note.
var PriorityOrder = []Role{RoleAdmin, RoleStaff, RolePartner, RoleAgent, RoleStudent}

// ParseRole normalizes a stored label. Unknown labels are kept verbatim.
func ParseRole(label string) Role {
	return Role(strings.ToLower(strings.TrimSpace(label)))
}

// Known reports whether the role belongs to the recognized set.
func (r Role) Known() bool {
	for _, known := range PriorityOrder {
		if r == known {
			return true
		}
	}
	return false
}

// RoleSet is the unordered collection of roles held by one identity.
type RoleSet []Role

// Has reports whether the set contains role.
func (s RoleSet) Has(role Role) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

// Unknown returns the labels that are not recognized roles.
func (s RoleSet) Unknown() []Role {
	var out []Role
	for _, r := range s {
		if !r.Known() {
			out = append(out, r)
		}
	}
	return out
}

// Strings returns the labels as plain strings.
func (s RoleSet) Strings() []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
