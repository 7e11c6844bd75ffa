package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS is the request gate: every response carries the three fixed headers
// scoping the API to a single calling origin, and OPTIONS preflights are
// answered immediately with an empty 200, bypassing all further logic.
//
// The gate runs before routing-dependent middleware so preflights succeed
// even for paths with no registered OPTIONS route.
func CORS(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
