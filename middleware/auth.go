package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"reviewdb/models"
	"reviewdb/policy"
)

type Claims struct {
	UserID      uint            `json:"user_id"`
	Username    string          `json:"username"`
	Role        models.UserRole `json:"role"`
	IsSuperuser bool            `json:"is_superuser"`
	jwt.RegisteredClaims
}

const callerKey = "caller"

// RequireAuth validates the bearer token and stores the caller identity in
// the request context.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(callerKey, policy.Caller{
			ID:          claims.UserID,
			Username:    claims.Username,
			Role:        claims.Role,
			IsSuperuser: claims.IsSuperuser,
		})
		c.Next()
	}
}

// RequireOperation gates a route on the policy grant table. It must run
// after RequireAuth.
func RequireOperation(op policy.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CurrentCaller(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		if !caller.Allowed(op) {
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentCaller returns the authenticated identity, if any.
func CurrentCaller(c *gin.Context) (policy.Caller, bool) {
	v, exists := c.Get(callerKey)
	if !exists {
		return policy.Caller{}, false
	}
	caller, ok := v.(policy.Caller)
	return caller, ok
}
