// Package auth carries the request-scoped identity resolved by the
// authentication middleware.
package auth

import "github.com/gin-gonic/gin"

// AuthMode identifies which credential channel authenticated the request.
type AuthMode string

const (
	ModeSession AuthMode = "session"
	ModeAPIKey  AuthMode = "api_key"
)

// ContextKey is the gin context key under which the principal is stored.
const ContextKey = "principal"

// Principal is the authenticated caller. Handlers must scope every data
// access by ID; Name and Email exist for response echoes only.
type Principal struct {
	ID    string
	Name  string
	Email string
	Mode  AuthMode
}

// IsAPIKey reports whether the request authenticated with an API key.
func (p *Principal) IsAPIKey() bool {
	return p.Mode == ModeAPIKey
}

// Set stores the principal on the gin context.
func Set(c *gin.Context, p *Principal) {
	c.Set(ContextKey, p)
	c.Set("user_id", p.ID)
}

// FromContext retrieves the principal set by the auth middleware.
// The second return is false on unauthenticated requests.
func FromContext(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(ContextKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}
