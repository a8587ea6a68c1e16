package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tradeacademy/backend/internal/authctx"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/models"
	"github.com/tradeacademy/backend/internal/services"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	userID, err := authctx.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	booking, err := h.bookingService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrPremiumRequired) {
			return forbidden(c, err.Error())
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return unauthorized(c)
		}
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking created successfully",
		"booking": dto.NewBookingResponse(booking),
	})
}

// List returns every booking for admins and only the caller's own bookings
// for everyone else.
func (h *BookingHandler) List(c *fiber.Ctx) error {
	userID, err := authctx.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var bookings []models.MentorshipBooking
	if authctx.IsAdmin(c) {
		bookings, err = h.bookingService.ListAll()
	} else {
		bookings, err = h.bookingService.ListForUser(userID)
	}
	if err != nil {
		return internalError(c)
	}

	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = dto.NewBookingResponse(&bookings[i])
	}
	return c.JSON(fiber.Map{"bookings": responses})
}

func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	booking, err := h.bookingService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			return notFound(c, "Booking not found")
		}
		if errors.Is(err, services.ErrInvalidBookingStatus) {
			return badRequest(c, "Invalid status")
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"message": "Booking status updated successfully",
		"booking": dto.NewBookingResponse(booking),
	})
}

func (h *BookingHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid booking ID")
	}

	var req dto.UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	booking, err := h.bookingService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			return notFound(c, "Booking not found")
		}
		if errors.Is(err, services.ErrInvalidBookingStatus) {
			return badRequest(c, "Invalid status")
		}
		return badRequest(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Booking updated successfully",
		"booking": dto.NewBookingResponse(booking),
	})
}
