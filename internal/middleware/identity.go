package middleware

import (
	"strings"

	"language_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// Identity copies the caller identity headers into the request context.
// Nothing is authenticated; missing headers leave the keys unset.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if v := strings.TrimSpace(c.GetHeader(util.HeaderUserID)); v != "" {
			c.Set(util.CtxUserID, v)
		}
		if v := strings.TrimSpace(c.GetHeader(util.HeaderStudentID)); v != "" {
			c.Set(util.CtxStudentID, v)
		}
		c.Next()
	}
}
