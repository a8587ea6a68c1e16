package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/services"
)

type PurchaseHandler struct {
	purchaseService *services.PurchaseService
}

func NewPurchaseHandler(purchaseService *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Submit is the only public purchase endpoint: anonymous visitors apply for
// a plan here.
func (h *PurchaseHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitPurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	request, err := h.purchaseService.Submit(&req)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Purchase request submitted successfully",
		"request": request,
	})
}

func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	requests, err := h.purchaseService.List()
	if err != nil {
		return internalError(c)
	}
	return c.JSON(fiber.Map{"requests": requests})
}

func (h *PurchaseHandler) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	request, err := h.purchaseService.Get(id)
	if err != nil {
		return notFound(c, "Purchase request not found")
	}
	return c.JSON(fiber.Map{"request": request})
}

func (h *PurchaseHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	var req dto.UpdateRequestStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	request, err := h.purchaseService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return notFound(c, "Purchase request not found")
		}
		if errors.Is(err, services.ErrInvalidStatus) {
			return badRequest(c, "Invalid status")
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"message": "Status updated successfully",
		"request": request,
	})
}

// Approve provisions the account and removes the request. A Conflict leaves
// the request pending; a provision-incomplete answer means the account was
// created but the request row survived and the deletion should be retried.
func (h *PurchaseHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	var req dto.ApproveRequestBody
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.purchaseService.Approve(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return notFound(c, "Purchase request not found")
		}
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "User already exists",
			})
		}
		if errors.Is(err, services.ErrProvisionIncomplete) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
				"user":    dto.NewUserResponse(user),
			})
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Request approved and account created",
		"user":    dto.NewUserResponse(user),
	})
}

func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	if err := h.purchaseService.Delete(id); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return notFound(c, "Purchase request not found")
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Purchase request deleted successfully"})
}
