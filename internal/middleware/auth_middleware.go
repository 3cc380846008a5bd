package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"courtier_backend/internal/repositories"
	"courtier_backend/pkg/logger"
	"courtier_backend/pkg/utils/jwt"
)

// AuthRequired guards the admin routes. A token is only honored while its
// server-side session row exists and has not expired, so a logout revokes
// access immediately.
func AuthRequired(sessions *repositories.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header is required",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		session, err := sessions.GetByID(claims.SessionID)
		if err != nil || session.Expired() {
			if err != nil && !errors.Is(err, repositories.ErrNotFound) {
				logger.Log.Errorf("Error fetching session %s: %v", claims.SessionID, err)
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Session expired or revoked",
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}
