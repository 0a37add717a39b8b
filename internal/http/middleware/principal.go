// Caller identity plumbing. The registry core asks an external collaborator
// whether a principal is the authenticated caller; over HTTP that collaborator
// is this middleware, which lifts the X-Principal header into the request
// context. Anything stronger (tokens, signatures) belongs in front of this
// service; the engine only needs a consistent answer to "who is calling".
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// HeaderPrincipal is the request header carrying the caller principal.
const HeaderPrincipal = "X-Principal"

type principalCtxKey struct{}

// Principal extracts the caller principal from X-Principal and stores it in
// both the Gin context (key "principal", for logging and rate limiting) and
// the request context (for the registry's Authenticator).
func Principal() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.GetHeader(HeaderPrincipal)
		if p != "" {
			c.Set("principal", p)
			ctx := context.WithValue(c.Request.Context(), principalCtxKey{}, p)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// PrincipalFrom returns the caller principal stored by Principal(), or ""
// when the request carried no identity.
func PrincipalFrom(ctx context.Context) string {
	if p, ok := ctx.Value(principalCtxKey{}).(string); ok {
		return p
	}
	return ""
}

// CallerFrom is the Gin-context variant of PrincipalFrom.
func CallerFrom(c *gin.Context) string {
	if v, ok := c.Get("principal"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
