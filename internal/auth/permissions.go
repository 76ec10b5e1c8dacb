package auth

import "slices"

// Permission constants define the tokens checked by route guards.
// Tokens use the action:resource format of the admin panel.
const (
	// PermWildcard grants every permission.
	PermWildcard = "*"

	// PermRead allows opening the admin dashboard.
	PermRead = "read"

	// PermWriteNews allows managing news articles.
	PermWriteNews = "write:news"
	// PermWriteEvents allows managing events.
	PermWriteEvents = "write:events"
	// PermWriteLeadership allows managing leadership bios.
	PermWriteLeadership = "write:leadership"
	// PermWriteActivities allows managing payam activities.
	PermWriteActivities = "write:activities"
	// PermWriteMedia allows managing the media library.
	PermWriteMedia = "write:media"
	// PermWritePages allows managing static pages.
	PermWritePages = "write:pages"

	// PermWriteDonations allows recording donations and updating payam fundraising progress.
	PermWriteDonations = "write:donations"
	// PermWritePledges allows managing pledges.
	PermWritePledges = "write:pledges"
	// PermReadAudit allows reading the audit log.
	PermReadAudit = "read:audit"

	// PermAdminUsers allows managing admin accounts. Only the wildcard grants it.
	PermAdminUsers = "admin:users"
	// PermAdminSettings allows changing site settings. Only the wildcard grants it.
	PermAdminSettings = "admin:settings"
)

// PermissionSet is the read-only collection of tokens a role may exercise.
type PermissionSet []string

// Allows reports whether the set grants token, either directly or through the wildcard.
func (p PermissionSet) Allows(token string) bool {
	if token == "" {
		return false
	}

	return slices.Contains(p, PermWildcard) || slices.Contains(p, token)
}

// PermissionTable maps every role to its PermissionSet.
type PermissionTable map[Role]PermissionSet

// DefaultPermissionTable returns the role table of the admin panel.
func DefaultPermissionTable() PermissionTable {
	return PermissionTable{
		RoleSuperAdmin: {PermWildcard},
		RoleEditor: {
			PermRead,
			PermWriteNews,
			PermWriteEvents,
			PermWriteLeadership,
			PermWriteActivities,
			PermWriteMedia,
			PermWritePages,
		},
		RoleFinance:   {PermRead, PermWriteDonations, PermWritePledges, PermReadAudit},
		RoleCommittee: {PermRead, PermWriteDonations, PermWritePledges, PermReadAudit},
	}
}

// Resolve returns a copy of the permission set of role. Unknown roles resolve to an empty set.
func (t PermissionTable) Resolve(role Role) PermissionSet {
	return slices.Clone(t[role])
}

// Allows reports whether role is granted token.
func (t PermissionTable) Allows(role Role, token string) bool {
	return t[role].Allows(token)
}
