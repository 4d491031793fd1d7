// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level carried by a session.
type UserRole string

const (
	// Can open edit sessions and commit content
	RoleAdmin UserRole = "admin"

	// Anonymous visitor, read-only access to canonical content
	RoleGuest UserRole = "guest"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleGuest:
		return 10
	default:
		return 0
	}
}
