package auth

import (
	"github.com/gobwas/glob"

	"github.com/96TSH/nutrimate/internal/model"
)

// Outcome is the per-request access decision.
type Outcome int

const (
	// Granted lets the request through.
	Granted Outcome = iota
	// NeedsCredentials means no (valid) credentials were presented on a
	// protected route: an unauthorized, not forbidden, outcome.
	NeedsCredentials
	// Forbidden means the caller authenticated but lacks the required role.
	Forbidden
)

// RouteRule pairs a path pattern with its role requirement. A public rule
// needs no credentials; an empty role set admits any authenticated identity.
type RouteRule struct {
	pattern glob.Glob
	public  bool
	roles   []model.Role
}

func (r RouteRule) permits(role model.Role) bool {
	if len(r.roles) == 0 {
		return true
	}
	for _, required := range r.roles {
		if role == required {
			return true
		}
	}
	return false
}

// RouteRules is an ordered access table; the first matching pattern governs.
type RouteRules []RouteRule

// PublicRule admits a path pattern with no credential check.
func PublicRule(pattern string) RouteRule {
	return RouteRule{pattern: glob.MustCompile(pattern), public: true}
}

// RoleRule requires any of the given roles on a path pattern.
func RoleRule(pattern string, roles ...model.Role) RouteRule {
	return RouteRule{pattern: glob.MustCompile(pattern), roles: roles}
}

// DefaultRouteRules mirrors the portal's access table. Paths that match no
// rule require any authenticated identity.
func DefaultRouteRules() RouteRules {
	return RouteRules{
		PublicRule("/public/**"),
		PublicRule("/login*"),
		RoleRule("/customers/**", model.RoleUser),
		RoleRule("/admin/**", model.RoleAdmin),
		RoleRule("/index", model.RoleUser, model.RoleAdmin),
	}
}

// Evaluate decides access for a request path given the authenticated
// identity, or nil when no valid credentials were presented.
func (rs RouteRules) Evaluate(path string, identity *Identity) Outcome {
	rule, matched := rs.match(path)
	if matched && rule.public {
		return Granted
	}
	if identity == nil {
		return NeedsCredentials
	}
	if !matched {
		// any authenticated identity
		return Granted
	}
	if rule.permits(identity.Role) {
		return Granted
	}
	return Forbidden
}

func (rs RouteRules) match(path string) (RouteRule, bool) {
	for _, rule := range rs {
		if rule.pattern.Match(path) {
			return rule, true
		}
	}
	return RouteRule{}, false
}
