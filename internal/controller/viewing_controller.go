package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"courtier_backend/internal/model"
	"courtier_backend/internal/repositories"
	"courtier_backend/internal/validation"
	"courtier_backend/pkg/email"
	"courtier_backend/pkg/logger"
)

// ViewingController serves showing requests. Creation is public; managing
// the schedule is the broker's back office.
type ViewingController struct {
	viewings    *repositories.ViewingRepository
	properties  *repositories.PropertyRepository
	notifyEmail string
}

func NewViewingController(viewings *repositories.ViewingRepository, properties *repositories.PropertyRepository, notifyEmail string) *ViewingController {
	return &ViewingController{
		viewings:    viewings,
		properties:  properties,
		notifyEmail: notifyEmail,
	}
}

func (h *ViewingController) RegisterRoutes(api fiber.Router, auth fiber.Handler) {
	api.Post("/viewings", h.Create)
	api.Get("/viewings", auth, h.List)
	api.Get("/viewings/:id", auth, h.Get)
	api.Patch("/viewings/:id", auth, h.UpdateStatus)
	api.Delete("/viewings/:id", auth, h.Delete)
}

func (h *ViewingController) Create(c *fiber.Ctx) error {
	input := new(validation.ViewingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validation.Validate(input); err != nil {
		return validationFailed(c, err)
	}

	property, err := h.properties.GetByID(input.PropertyID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Validation failed",
				"details": validation.NewValidationError("propertyId", "does not reference an existing property").Fields,
			})
		}
		logger.Log.Errorf("Error fetching property for viewing: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create viewing",
		})
	}

	viewing := model.Viewing{
		PropertyID:    input.PropertyID,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		Message:       input.Message,
	}

	if err := h.viewings.Create(&viewing); err != nil {
		logger.Log.Errorf("Error creating viewing: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create viewing",
		})
	}

	if email.GlobalEmailService != nil && h.notifyEmail != "" {
		err := email.GlobalEmailService.SendViewingNotification(h.notifyEmail, email.ViewingNotificationData{
			VisitorName:   viewing.Name,
			VisitorEmail:  viewing.Email,
			VisitorPhone:  viewing.Phone,
			PropertyTitle: property.Title,
			PreferredDate: viewing.PreferredDate,
			PreferredTime: viewing.PreferredTime,
			Message:       viewing.Message,
		})
		if err != nil {
			logger.Log.Errorf("Could not send viewing notification email: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(viewing)
}

func (h *ViewingController) List(c *fiber.Ctx) error {
	viewings, err := h.viewings.GetAll()
	if err != nil {
		logger.Log.Errorf("Error fetching viewings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch viewings",
		})
	}
	return c.JSON(viewings)
}

func (h *ViewingController) Get(c *fiber.Ctx) error {
	viewing, err := h.viewings.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Viewing not found",
			})
		}
		logger.Log.Errorf("Error fetching viewing: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch viewing",
		})
	}
	return c.JSON(viewing)
}

func (h *ViewingController) UpdateStatus(c *fiber.Ctx) error {
	input := new(validation.StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validation.Validate(input); err != nil {
		return validationFailed(c, err)
	}

	status := model.ViewingStatus(input.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":         "Invalid status value",
			"validStatuses": model.ViewingStatuses(),
		})
	}

	viewing, err := h.viewings.UpdateStatus(c.Params("id"), status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Viewing not found",
			})
		}
		logger.Log.Errorf("Error updating viewing status: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update viewing",
		})
	}

	return c.JSON(viewing)
}

func (h *ViewingController) Delete(c *fiber.Ctx) error {
	deleted, err := h.viewings.Delete(c.Params("id"))
	if err != nil {
		logger.Log.Errorf("Error deleting viewing: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete viewing",
		})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Viewing not found",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
