package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/services"
)

// AdminHandler covers user administration and the dashboard counters.
type AdminHandler struct {
	userService         *services.UserService
	purchaseService     *services.PurchaseService
	contentService      *services.ContentService
	announcementService *services.AnnouncementService
}

func NewAdminHandler(
	userService *services.UserService,
	purchaseService *services.PurchaseService,
	contentService *services.ContentService,
	announcementService *services.AnnouncementService,
) *AdminHandler {
	return &AdminHandler{
		userService:         userService,
		purchaseService:     purchaseService,
		contentService:      contentService,
		announcementService: announcementService,
	}
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	var stats dto.DashboardStats
	var err error

	if stats.TotalUsers, err = h.userService.Count(); err != nil {
		return internalError(c)
	}
	if stats.ActiveUsers, err = h.userService.CountActive(); err != nil {
		return internalError(c)
	}
	stats.TotalRequests, stats.PendingRequests, stats.ApprovedRequests, stats.RejectedRequests, err = h.purchaseService.Counts()
	if err != nil {
		return internalError(c)
	}
	if stats.TotalContent, err = h.contentService.Count(); err != nil {
		return internalError(c)
	}
	if stats.TotalAnnouncements, err = h.announcementService.Count(); err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{"stats": stats})
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.List()
	if err != nil {
		return internalError(c)
	}

	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = dto.NewUserResponse(&users[i])
	}
	return c.JSON(fiber.Map{"users": responses})
}

func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "User already exists",
			})
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    dto.NewUserResponse(user),
	})
}

func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.userService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"message": "User updated successfully",
		"user":    dto.NewUserResponse(user),
	})
}

func (h *AdminHandler) UpdateUserPassword(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.userService.UpdatePassword(id, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"message": "Password updated successfully",
		"user":    dto.NewUserResponse(user),
	})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
