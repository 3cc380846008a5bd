package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"courtier_backend/internal/model"
	"courtier_backend/internal/repositories"
	"courtier_backend/internal/validation"
	"courtier_backend/pkg/logger"
)

// PropertyController serves the listing CRUD. Reads are public; writes sit
// behind the admin auth middleware.
type PropertyController struct {
	properties *repositories.PropertyRepository
}

func NewPropertyController(properties *repositories.PropertyRepository) *PropertyController {
	return &PropertyController{properties: properties}
}

func (h *PropertyController) RegisterRoutes(api fiber.Router, auth fiber.Handler) {
	api.Get("/properties", h.List)
	api.Get("/properties/:id", h.Get)
	api.Post("/properties", auth, h.Create)
	api.Patch("/properties/:id", auth, h.Update)
	api.Delete("/properties/:id", auth, h.Delete)
}

func (h *PropertyController) List(c *fiber.Ctx) error {
	properties, err := h.properties.GetAll()
	if err != nil {
		logger.Log.Errorf("Error fetching properties: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch properties",
		})
	}
	return c.JSON(properties)
}

func (h *PropertyController) Get(c *fiber.Ctx) error {
	property, err := h.properties.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		logger.Log.Errorf("Error fetching property: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch property",
		})
	}
	return c.JSON(property)
}

func (h *PropertyController) Create(c *fiber.Ctx) error {
	input := new(validation.PropertyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validation.Validate(input); err != nil {
		return validationFailed(c, err)
	}

	property := model.Property{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Address:     input.Address,
		City:        input.City,
		Province:    input.Province,
		Bedrooms:    *input.Bedrooms,
		Bathrooms:   *input.Bathrooms,
		SquareFeet:  *input.SquareFeet,
		LotSize:     input.LotSize,
		YearBuilt:   input.YearBuilt,
		Status:      model.PropertyStatus(input.Status),
		Features:    datatypes.JSONSlice[string](input.Features),
		Images:      datatypes.JSONSlice[string](input.Images),
	}

	if err := h.properties.Create(&property); err != nil {
		logger.Log.Errorf("Error creating property: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create property",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(property)
}

func (h *PropertyController) Update(c *fiber.Ctx) error {
	input := new(validation.PropertyPatchInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validation.Validate(input); err != nil {
		return validationFailed(c, err)
	}

	property, err := h.properties.Update(c.Params("id"), input.Updates())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		logger.Log.Errorf("Error updating property: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update property",
		})
	}

	return c.JSON(property)
}

func (h *PropertyController) Delete(c *fiber.Ctx) error {
	deleted, err := h.properties.Delete(c.Params("id"))
	if err != nil {
		logger.Log.Errorf("Error deleting property: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete property",
		})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
