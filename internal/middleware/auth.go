package middleware

import (
	"strings"

	"github.com/dimitrije/sharevault/internal/services"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	AccountIDKey   = "account_id"
	AccountNameKey = "account_name"
)

// Auth resolves the bearer token to the calling account.
func Auth(jwtService *services.JWTService) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		token := strings.TrimSpace(parts[1])
		if token == "" {
			c.Unauthorized("invalid authorization header format")
			return
		}

		claims, err := jwtService.ValidateAccessToken(token)
		if err != nil {
			c.Unauthorized("invalid or expired token")
			return
		}

		c.Set(AccountIDKey, claims.AccountID)
		c.Set(AccountNameKey, claims.Name)

		c.Next()
	}
}

func GetAccountID(c *drift.Context) uuid.UUID {
	if id, ok := c.Get(AccountIDKey); ok {
		if uid, ok := id.(uuid.UUID); ok {
			return uid
		}
	}
	return uuid.Nil
}

func GetAccountName(c *drift.Context) string {
	if name, ok := c.Get(AccountNameKey); ok {
		if n, ok := name.(string); ok {
			return n
		}
	}
	return ""
}
