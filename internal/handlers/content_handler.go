package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tradeacademy/backend/internal/authctx"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/services"
)

type ContentHandler struct {
	contentService *services.ContentService
	userService    *services.UserService
}

func NewContentHandler(contentService *services.ContentService, userService *services.UserService) *ContentHandler {
	return &ContentHandler{contentService: contentService, userService: userService}
}

// callerPlan resolves the caller's current plan from the database so that an
// admin plan change takes effect without a re-login.
func (h *ContentHandler) callerPlan(c *fiber.Ctx) (string, error) {
	userID, err := authctx.UserID(c)
	if err != nil {
		return "", err
	}
	user, err := h.userService.GetByID(userID)
	if err != nil {
		return "", err
	}
	return user.Plan, nil
}

func (h *ContentHandler) List(c *fiber.Ctx) error {
	plan, err := h.callerPlan(c)
	if err != nil {
		return unauthorized(c)
	}

	items, err := h.contentService.ListForPlan(plan)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"content": items})
}

func (h *ContentHandler) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid content ID")
	}

	plan, err := h.callerPlan(c)
	if err != nil {
		return unauthorized(c)
	}

	item, err := h.contentService.GetForPlan(id, plan)
	if err != nil {
		if errors.Is(err, services.ErrContentForbidden) {
			return forbidden(c, "Your plan does not include this content")
		}
		return notFound(c, "Content not found")
	}
	return c.JSON(fiber.Map{"content": item})
}

func (h *ContentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	item, err := h.contentService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPlanTags) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Content created successfully",
		"content": item,
	})
}

func (h *ContentHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid content ID")
	}

	var req dto.UpdateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	item, err := h.contentService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return notFound(c, "Content not found")
		}
		if errors.Is(err, services.ErrInvalidPlanTags) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"message": "Content updated successfully",
		"content": item,
	})
}

func (h *ContentHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid content ID")
	}

	if err := h.contentService.Delete(id); err != nil {
		if errors.Is(err, services.ErrContentNotFound) {
			return notFound(c, "Content not found")
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Content deleted successfully"})
}
