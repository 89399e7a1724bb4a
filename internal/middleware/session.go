// internal/middleware/session.go
package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin"
)

const SessionHeader = "X-Session-ID"

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// Session reads the dashboard session from X-Session-ID. Requests without a
// usable header share the default session.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if !sessionIDPattern.MatchString(id) {
			id = ""
		}
		c.Set("session_id", id)
		c.Next()
	}
}
