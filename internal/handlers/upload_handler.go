package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/media"
)

// UploadHandler proxies admin file uploads to the configured media store.
// A nil uploader means the Cloudinary credentials were not set.
type UploadHandler struct {
	uploader media.Uploader
}

func NewUploadHandler(uploader media.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	if h.uploader == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: "Upload service is not configured",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "Could not read uploaded file")
	}
	defer file.Close()

	result, err := h.uploader.Upload(c.Context(), file, fileHeader.Filename)
	if err != nil {
		// Upstream failures are passed through so the admin UI can show
		// the real reason.
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "File uploaded successfully",
		"url":      result.URL,
		"publicId": result.PublicID,
	})
}
