package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"mockmate/interview-api/internal/services"
)

const userLocalsKey = "user"

// Protect requires a valid bearer token and stashes its claims on the
// request context.
func Protect(tokens services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No token",
			})
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		c.Locals(userLocalsKey, claims)
		return c.Next()
	}
}

// AdminOnly rejects requests whose token does not carry the admin flag.
// Must run after Protect.
func AdminOnly(c *fiber.Ctx) error {
	claims := CurrentUser(c)
	if claims == nil || !claims.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Admin only",
		})
	}
	return c.Next()
}

// CurrentUser returns the claims set by Protect, or nil on an
// unauthenticated request.
func CurrentUser(c *fiber.Ctx) *services.TokenClaims {
	claims, _ := c.Locals(userLocalsKey).(*services.TokenClaims)
	return claims
}
