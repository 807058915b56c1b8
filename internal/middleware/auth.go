package middleware

import (
	"net/http"
	"strings"

	"github.com/clearhire/clearhire-api/internal/services"
	"github.com/clearhire/clearhire-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// TokenVerifier validates a bearer token against the identity provider's
// published keys.
type TokenVerifier interface {
	Verify(tokenString string) (*services.IdentityClaims, error)
}

func Auth(verifier TokenVerifier) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "AUTH_HEADER")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			unauthorized(c, "AUTH_HEADER")
			return
		}

		claims, err := verifier.Verify(parts[1])
		if err != nil {
			unauthorized(c, "AUTH_TOKEN")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			unauthorized(c, "AUTH_SUBJECT")
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UserEmailKey, claims.Email)

		c.Next()
	}
}

func unauthorized(c *drift.Context, code string) {
	_ = c.JSON(http.StatusUnauthorized, dto.FailCode(code))
	c.Abort()
}

func GetUserID(c *drift.Context) uuid.UUID {
	if id, ok := c.Get(UserIDKey); ok {
		if uid, ok := id.(uuid.UUID); ok {
			return uid
		}
	}
	return uuid.Nil
}

func GetUserEmail(c *drift.Context) string {
	if email, ok := c.Get(UserEmailKey); ok {
		if e, ok := email.(string); ok {
			return e
		}
	}
	return ""
}
