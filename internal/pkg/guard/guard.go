// Package guard decides whether a navigation request may proceed for the
// current session. It is the gateway-side counterpart of the old SPA's
// ProtectedRoute wrapper and, like it, is advisory only: the upstream API
// re-authorizes every request with the bearer token, so nothing here is a
// security boundary.
package guard

import (
	"strings"

	"ems-gateway/internal/core/domain"
)

// LoginPath is where every rejected navigation is sent
const LoginPath = "/login"

// Decision is the outcome of a guard evaluation
type Decision struct {
	Allow    bool
	Redirect string // target path, set when Allow is false
}

// Allow is the passing decision
func Allow() Decision {
	return Decision{Allow: true}
}

// RedirectTo builds a rejecting decision
func RedirectTo(target string) Decision {
	return Decision{Redirect: target}
}

// section prefixes and the role each one requires
var sectionRoles = []struct {
	prefix string
	role   domain.Role
}{
	{"/admin", domain.RoleAdmin},
	{"/hr", domain.RoleHR},
	{"/employee", domain.RoleEmployee},
}

// Evaluate gates a requested path against the current session.
//
//  1. no token or no parseable role -> redirect to /login
//  2. /admin*, /hr*, /employee* each require the matching role
//  3. any other path is allowed once authenticated (no allow-list
//     beyond prefix matching)
func Evaluate(sess *domain.Session, path string) Decision {
	if !sess.Valid() {
		return RedirectTo(LoginPath)
	}

	for _, s := range sectionRoles {
		if matchesSection(path, s.prefix) {
			if sess.Role != s.role {
				return RedirectTo(LoginPath)
			}
			return Allow()
		}
	}

	return Allow()
}

// matchesSection reports whether path falls under the section prefix.
// "/admin" and "/admin/..." match; "/administrator" does not.
func matchesSection(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}
