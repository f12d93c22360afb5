package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/96TSH/nutrimate/internal/model"
)

func TestRouteRules_Evaluate(t *testing.T) {
	rules := DefaultRouteRules()

	user := &Identity{CustomerID: 1, Username: "bob", Role: model.RoleUser}
	admin := &Identity{CustomerID: 2, Username: "root", Role: model.RoleAdmin}

	tests := []struct {
		name     string
		path     string
		identity *Identity
		want     Outcome
	}{
		{"public path without credentials", "/public/courses", nil, Granted},
		{"nested public path without credentials", "/public/reset-password", nil, Granted},
		{"login page without credentials", "/login", nil, Granted},
		{"login with query-style suffix", "/login-error", nil, Granted},
		{"customers path without credentials", "/customers/profile", nil, NeedsCredentials},
		{"customers path as user", "/customers/profile", user, Granted},
		{"customers path as admin", "/customers/profile", admin, Forbidden},
		{"admin path without credentials", "/admin/courses", nil, NeedsCredentials},
		{"admin path as user is forbidden, not unauthorized", "/admin/courses", user, Forbidden},
		{"admin path as admin", "/admin/courses", admin, Granted},
		{"index as user", "/index", user, Granted},
		{"index as admin", "/index", admin, Granted},
		{"index without credentials", "/index", nil, NeedsCredentials},
		{"unlisted path without credentials", "/metrics", nil, NeedsCredentials},
		{"unlisted path as any authenticated identity", "/metrics", user, Granted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Evaluate(tt.path, tt.identity))
		})
	}
}

func TestRouteRules_FirstMatchWins(t *testing.T) {
	// A broad public rule declared first shadows a stricter one after it.
	rules := RouteRules{
		PublicRule("/admin/health"),
		RoleRule("/admin/**", model.RoleAdmin),
	}

	assert.Equal(t, Granted, rules.Evaluate("/admin/health", nil))
	assert.Equal(t, NeedsCredentials, rules.Evaluate("/admin/courses", nil))
}
