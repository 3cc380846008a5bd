package controller

import (
	"github.com/gofiber/fiber/v2"

	"courtier_backend/pkg/logger"
	"courtier_backend/pkg/utils/storage"
	imagevalidation "courtier_backend/pkg/utils/validation"
)

// UploadController stores listing photos and returns their URLs. The admin
// UI uploads images first, then references the URLs in the property payload.
type UploadController struct {
	uploader storage.Uploader
}

func NewUploadController(uploader storage.Uploader) *UploadController {
	return &UploadController{uploader: uploader}
}

func (h *UploadController) RegisterRoutes(api fiber.Router, auth fiber.Handler) {
	api.Post("/upload/property-images", auth, h.Upload)
}

func (h *UploadController) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No files uploaded",
		})
	}

	files := form.File["images"]
	if err := imagevalidation.ValidateImageBatch(files); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	imageURLs := make([]string, 0, len(files))
	for _, file := range files {
		url, err := h.uploader.Save(file)
		if err != nil {
			logger.Log.Errorf("Error uploading image %s: %v", file.Filename, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to upload images",
			})
		}
		imageURLs = append(imageURLs, url)
	}

	return c.JSON(fiber.Map{"imageUrls": imageURLs})
}
