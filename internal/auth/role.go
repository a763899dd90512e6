package auth

import (
	"fmt"
	"strings"
)

// Role is the closed set of roles a session can carry. Roles are derived
// from an account's department tags and its approver flag at login time
// and are never stored anywhere else.
type Role string

const (
	RoleHumanitario  Role = "humanitario"
	RolePsicosocial  Role = "psicosocial"
	RoleLegal        Role = "legal"
	RoleComunicacion Role = "comunicacion"
	RoleAlmacen      Role = "almacen"

	RoleAdminHumanitario  Role = "admin-humanitario"
	RoleAdminPsicosocial  Role = "admin-psicosocial"
	RoleAdminLegal        Role = "admin-legal"
	RoleAdminComunicacion Role = "admin-comunicacion"
	RoleAdminAlmacen      Role = "admin-almacen"

	RoleSuperuser Role = "superuser"
)

// AdminRolePrefix marks department-admin roles
const AdminRolePrefix = "admin-"

// TypeAll is the sentinel department tag meaning "all departments",
// carried only by superuser sessions
const TypeAll = "todos"

var validRoles = map[Role]struct{}{
	RoleHumanitario:       {},
	RolePsicosocial:       {},
	RoleLegal:             {},
	RoleComunicacion:      {},
	RoleAlmacen:           {},
	RoleAdminHumanitario:  {},
	RoleAdminPsicosocial:  {},
	RoleAdminLegal:        {},
	RoleAdminComunicacion: {},
	RoleAdminAlmacen:      {},
	RoleSuperuser:         {},
}

func (r Role) IsValid() bool {
	_, ok := validRoles[r]
	return ok
}

// DeriveRole builds a role from an account's primary department tag and
// its approver flag. When the flag is set the admin form of the tag is
// preferred; if that form is not a member of the closed set the bare tag
// is used instead. A tag whose bare form is also outside the set cannot
// produce a role.
func DeriveRole(primaryType string, isAuthorized bool) (Role, error) {
	base := Role(strings.ToLower(strings.TrimSpace(primaryType)))
	if isAuthorized {
		if candidate := Role(AdminRolePrefix + string(base)); candidate.IsValid() {
			return candidate, nil
		}
	}
	if base.IsValid() {
		return base, nil
	}
	return "", fmt.Errorf("failed to derive a role from type[%s]: %w", primaryType, ErrorUnknownDepartment)
}

// IsDepartment reports whether a tag names one of the base departments
func IsDepartment(tag string) bool {
	role := Role(tag)
	return role.IsValid() && role != RoleSuperuser && !strings.HasPrefix(tag, AdminRolePrefix)
}

// ParseTypes splits an account's type field on commas into an ordered
// list of lower-cased department tags, preserving order; the first entry
// is the primary type
func ParseTypes(typeField string) []string {
	segments := strings.Split(typeField, ",")
	types := []string{}
	for _, segment := range segments {
		tag := strings.ToLower(strings.TrimSpace(segment))
		if tag == "" {
			continue
		}
		types = append(types, tag)
	}
	return types
}
