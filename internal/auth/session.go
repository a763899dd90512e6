package auth

import (
	"strings"
	"time"
)

// Session is the authenticated identity carried between requests. It is
// created by the authenticator on a successful credential check,
// serialised into a transport token held in a cookie, and reconstructed
// by decoding that cookie on each subsequent request.
type Session struct {
	UserId   string    `json:"userId"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     Role      `json:"role"`
	Types    []string  `json:"types"`
	IssuedAt time.Time `json:"issuedAt"`
}

func (s Session) IsSuperuser() bool {
	return s.Role == RoleSuperuser
}

func (s Session) IsAdmin() bool {
	return s.IsSuperuser() || strings.HasPrefix(string(s.Role), AdminRolePrefix)
}

// UserType is the legacy singular department of the session: the
// sentinel for superusers, otherwise the role with any admin prefix
// stripped
func (s Session) UserType() string {
	if s.IsSuperuser() {
		return TypeAll
	}
	return strings.TrimPrefix(string(s.Role), AdminRolePrefix)
}

// UserTypes is the full ordered department list of the session
func (s Session) UserTypes() []string {
	if s.IsSuperuser() {
		return []string{TypeAll}
	}
	return s.Types
}

// CanAccessType reports whether the session's departments cover the
// given tag; the sentinel covers everything
func (s Session) CanAccessType(tag string) bool {
	for _, t := range s.UserTypes() {
		if t == TypeAll || t == tag {
			return true
		}
	}
	return false
}

// Requirement is the access requirement of a guarded view: a list whose
// entries are either "superuser", "admin", or department tags. An empty
// requirement means any authenticated session qualifies.
type Requirement []string

// IsSatisfiedBy applies the guard's satisfaction rule: a "superuser"
// entry is satisfied only by a superuser session, an "admin" entry by
// any admin or superuser, and a department entry when the session's
// departments cover it.
func (req Requirement) IsSatisfiedBy(s Session) bool {
	if len(req) == 0 {
		return true
	}
	for _, entry := range req {
		switch entry {
		case string(RoleSuperuser):
			if s.IsSuperuser() {
				return true
			}
		case "admin":
			if s.IsAdmin() {
				return true
			}
		default:
			if s.CanAccessType(entry) {
				return true
			}
		}
	}
	return false
}
