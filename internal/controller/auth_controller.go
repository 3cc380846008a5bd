package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"courtier_backend/internal/model"
	"courtier_backend/internal/repositories"
	"courtier_backend/internal/validation"
	"courtier_backend/pkg/logger"
	"courtier_backend/pkg/utils/jwt"
)

// AuthController issues and revokes admin sessions. There is no public
// registration; the only account is the seeded broker admin.
type AuthController struct {
	users    *repositories.UserRepository
	sessions *repositories.SessionRepository
}

func NewAuthController(users *repositories.UserRepository, sessions *repositories.SessionRepository) *AuthController {
	return &AuthController{users: users, sessions: sessions}
}

func (h *AuthController) RegisterRoutes(api fiber.Router, auth fiber.Handler) {
	api.Post("/auth/login", h.Login)
	api.Post("/auth/logout", auth, h.Logout)
	api.Get("/auth/me", auth, h.Me)
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	input := new(validation.LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validation.Validate(input); err != nil {
		return validationFailed(c, err)
	}

	user, err := h.users.GetByEmail(input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid credentials",
			})
		}
		logger.Log.Errorf("Error fetching user for login: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	session := model.Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(jwt.TokenTTL),
	}
	if err := h.sessions.Create(&session); err != nil {
		logger.Log.Errorf("Error creating session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}

	token, err := jwt.GenerateToken(user.ID, session.ID, user.Email)
	if err != nil {
		logger.Log.Errorf("Error generating token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Login failed",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

func (h *AuthController) Logout(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	if _, err := h.sessions.Delete(claims.SessionID); err != nil {
		logger.Log.Errorf("Error deleting session: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Logout failed",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthController) Me(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	user, err := h.users.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		logger.Log.Errorf("Error fetching user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch user",
		})
	}

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":        user.ID,
			"email":     user.Email,
			"createdAt": user.CreatedAt,
		},
	})
}
