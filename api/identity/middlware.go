// Package identity authorizes API requests.
package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/advent2024/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextSubject is the key used to store the token subject in the Gin context.
	ContextSubject = "subject"
)

// Authoriz rejects requests without a valid bearer token issued by ts.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatus(http.StatusUnauthorized) // Malformed Authorization header.
			return
		}

		subject, err := ts.Decode(parts[1])
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextSubject, subject)
		c.Next()
	}
}
