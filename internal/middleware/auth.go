package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authenticatedKey = "authenticated"

// Auth validates an optional Bearer token. A valid token marks the request
// authenticated, which entitles it to restricted data spans; an absent or
// invalid token degrades to anonymous access rather than rejecting the
// request.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret != "" {
			header := c.GetHeader("Authorization")
			if token, ok := strings.CutPrefix(header, "Bearer "); ok {
				parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
					}
					return []byte(secret), nil
				})
				if err == nil && parsed.Valid {
					c.Set(authenticatedKey, true)
				}
			}
		}

		c.Next()
	}
}

// IsAuthenticated reports whether the request carried a valid token.
func IsAuthenticated(c *gin.Context) bool {
	return c.GetBool(authenticatedKey)
}
