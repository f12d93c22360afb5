package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/96TSH/nutrimate/internal/auth"
	"github.com/96TSH/nutrimate/internal/ginutil"
)

const (
	// SessionCookieName identifies the login session; cleared on logout.
	SessionCookieName = "NUTRISESSION"

	sessionUserKey = "username"
	ctxIdentityKey = "identity"
)

// AuthGate authenticates every request (session cookie first, then HTTP
// Basic) and authorizes it against the route rule table. It runs before any
// business handler; stateless across requests.
func (s *Service) AuthGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := s.identityFromRequest(c)

		switch s.Rules.Evaluate(c.Request.URL.Path, identity) {
		case auth.Granted:
			if identity != nil {
				c.Set(ctxIdentityKey, identity)
			}
			c.Next()
		case auth.NeedsCredentials:
			c.Header("WWW-Authenticate", `Basic realm="nutrimate"`)
			ginutil.JSONError(c, http.StatusUnauthorized, "authentication required")
		case auth.Forbidden:
			ginutil.JSONError(c, http.StatusForbidden, "access denied")
		}
	}
}

// identityFromRequest resolves the caller's identity from an established
// session or from Basic credentials. Any failure yields nil; the gate turns
// that into a generic unauthorized outcome without detail.
func (s *Service) identityFromRequest(c *gin.Context) *auth.Identity {
	session, err := s.Sessions.Get(c.Request, SessionCookieName)
	if err == nil {
		if username, ok := session.Values[sessionUserKey].(string); ok && username != "" {
			identity, err := s.Authenticator.Lookup(c.Request.Context(), username)
			if err == nil && identity != nil {
				return identity
			}
		}
	}

	if username, password, ok := c.Request.BasicAuth(); ok {
		identity, err := s.Authenticator.Authenticate(c.Request.Context(), username, password)
		if err == nil {
			return identity
		}
	}
	return nil
}

// currentIdentity returns the identity the gate attached to the request.
func currentIdentity(c *gin.Context) (*auth.Identity, bool) {
	value, ok := c.Get(ctxIdentityKey)
	if !ok {
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	return identity, ok
}
