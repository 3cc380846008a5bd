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

// LeadController serves the contact form. Creation is public; everything
// else is the broker's back office.
type LeadController struct {
	leads       *repositories.LeadRepository
	notifyEmail string
}

func NewLeadController(leads *repositories.LeadRepository, notifyEmail string) *LeadController {
	return &LeadController{leads: leads, notifyEmail: notifyEmail}
}

func (h *LeadController) RegisterRoutes(api fiber.Router, auth fiber.Handler) {
	api.Post("/leads", h.Create)
	api.Get("/leads", auth, h.List)
	api.Get("/leads/:id", auth, h.Get)
	api.Patch("/leads/:id", auth, h.UpdateStatus)
	api.Delete("/leads/:id", auth, h.Delete)
}

func (h *LeadController) Create(c *fiber.Ctx) error {
	input := new(validation.LeadInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validation.Validate(input); err != nil {
		return validationFailed(c, err)
	}

	// A blank propertyId from the form means a general inquiry.
	propertyID := input.PropertyID
	if propertyID != nil && *propertyID == "" {
		propertyID = nil
	}

	lead := model.Lead{
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Message:          input.Message,
		PropertyID:       propertyID,
		PropertyInterest: input.PropertyInterest,
	}

	if err := h.leads.Create(&lead); err != nil {
		logger.Log.Errorf("Error creating lead: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create lead",
		})
	}

	if email.GlobalEmailService != nil && h.notifyEmail != "" {
		err := email.GlobalEmailService.SendLeadNotification(h.notifyEmail, email.LeadNotificationData{
			LeadName:         lead.Name,
			LeadEmail:        lead.Email,
			LeadPhone:        lead.Phone,
			LeadMessage:      lead.Message,
			PropertyInterest: lead.PropertyInterest,
		})
		if err != nil {
			logger.Log.Errorf("Could not send lead notification email: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(lead)
}

func (h *LeadController) List(c *fiber.Ctx) error {
	leads, err := h.leads.GetAll()
	if err != nil {
		logger.Log.Errorf("Error fetching leads: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch leads",
		})
	}
	return c.JSON(leads)
}

func (h *LeadController) Get(c *fiber.Ctx) error {
	lead, err := h.leads.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Lead not found",
			})
		}
		logger.Log.Errorf("Error fetching lead: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch lead",
		})
	}
	return c.JSON(lead)
}

func (h *LeadController) UpdateStatus(c *fiber.Ctx) error {
	input := new(validation.StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validation.Validate(input); err != nil {
		return validationFailed(c, err)
	}

	// Any member of the enum is accepted at any time; the workflow order is
	// advisory, not enforced.
	status := model.LeadStatus(input.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":         "Invalid status value",
			"validStatuses": model.LeadStatuses(),
		})
	}

	lead, err := h.leads.UpdateStatus(c.Params("id"), status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Lead not found",
			})
		}
		logger.Log.Errorf("Error updating lead status: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update lead",
		})
	}

	return c.JSON(lead)
}

func (h *LeadController) Delete(c *fiber.Ctx) error {
	deleted, err := h.leads.Delete(c.Params("id"))
	if err != nil {
		logger.Log.Errorf("Error deleting lead: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete lead",
		})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Lead not found",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
