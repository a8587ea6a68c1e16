package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/services"
)

type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
}

func NewAnnouncementHandler(announcementService *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	announcements, err := h.announcementService.ListRecent(c.QueryInt("limit", 10))
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"announcements": announcements})
}

func (h *AnnouncementHandler) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid announcement ID")
	}

	announcement, err := h.announcementService.Get(id)
	if err != nil {
		return notFound(c, "Announcement not found")
	}
	return c.JSON(fiber.Map{"announcement": announcement})
}

func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	announcement, err := h.announcementService.Create(&req)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Announcement created successfully",
		"announcement": announcement,
	})
}

func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid announcement ID")
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	announcement, err := h.announcementService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrAnnouncementNotFound) {
			return notFound(c, "Announcement not found")
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"message":      "Announcement updated successfully",
		"announcement": announcement,
	})
}

func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid announcement ID")
	}

	if err := h.announcementService.Delete(id); err != nil {
		if errors.Is(err, services.ErrAnnouncementNotFound) {
			return notFound(c, "Announcement not found")
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Announcement deleted successfully"})
}
