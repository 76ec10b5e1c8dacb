package auth

import "fmt"

// Role is the access level of an Identity. The set of roles is closed.
type Role string

const (
	// RoleSuperAdmin is the top-level administrator and holds every permission.
	RoleSuperAdmin Role = "SUPER_ADMIN"
	// RoleEditor manages website content.
	RoleEditor Role = "EDITOR"
	// RoleFinance manages donations and pledges and reads the audit log.
	RoleFinance Role = "FINANCE"
	// RoleCommittee has the same access as RoleFinance for committee members.
	RoleCommittee Role = "COMMITTEE"
)

// Roles lists every valid role.
var Roles = []Role{RoleSuperAdmin, RoleEditor, RoleFinance, RoleCommittee}

var roleLabels = map[Role]string{
	RoleSuperAdmin: "Super Admin",
	RoleEditor:     "Editor",
	RoleFinance:    "Finance",
	RoleCommittee:  "Committee",
}

// ParseRole converts a role name into a Role.
func ParseRole(name string) (Role, error) {
	r := Role(name)
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, name)
	}

	return r, nil
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns a human readable name of the role.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}

	return string(r)
}

func (r Role) String() string {
	return string(r)
}
