package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mwanjeronie/mailinglist/internal/pkg/apierr"
	"github.com/mwanjeronie/mailinglist/internal/pkg/response"
)

// AdminAuth returns a middleware that gates admin routes behind the shared
// password. The credential rides in the Authorization header as a bearer
// token and is compared with plain equality; this is an internal tool, there
// is no account system behind it.
func AdminAuth(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := NormalizeToken(c.GetHeader("Authorization"))
		if token == "" || token != password {
			response.Err(c, apierr.Auth())
			return
		}
		c.Next()
	}
}

// NormalizeToken trims spaces and strips the optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
