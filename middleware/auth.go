package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/aminul-islam01/bistro-boss-server/model"
)

// Locals keys populated by RequireAuth for downstream gates and handlers.
const (
	ClaimsKey = "claims"
	EmailKey  = "user_email"
)

type TokenVerifier interface {
	Verify(token string) (jwt.MapClaims, error)
}

type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// RequireAuth expects "Authorization: Bearer <token>". A missing header and a
// header without a second field fail the same way.
func RequireAuth(tokens TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parts := strings.Split(c.Get("Authorization"), " ")
		if len(parts) < 2 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "unauthorized access"})
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": true, "message": "unauthorized access"})
		}

		c.Locals(ClaimsKey, claims)
		if email, ok := claims["email"].(string); ok {
			c.Locals(EmailKey, email)
		}
		return c.Next()
	}
}

// RequireAdmin must run after RequireAuth. The role comes from the user
// record, not from the token, so a revoked admin loses access as soon as the
// record changes.
func RequireAdmin(users UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals(EmailKey).(string)

		user, err := users.FindUserByEmail(c.Context(), email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if user == nil || user.Role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": true, "message": "forbidden access"})
		}
		return c.Next()
	}
}
