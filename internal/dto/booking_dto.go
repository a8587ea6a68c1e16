package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tradeacademy/backend/internal/models"
)

type CreateBookingRequest struct {
	BookingDate string  `json:"bookingDate" validate:"required,datetime=2006-01-02"`
	BookingTime string  `json:"bookingTime" validate:"required,datetime=15:04"`
	Duration    int     `json:"duration" validate:"required,min=15,max=240"`
	Message     *string `json:"message"`
}

// UpdateBookingRequest carries partial admin updates; nil fields are left
// untouched.
type UpdateBookingRequest struct {
	BookingDate *string `json:"bookingDate" validate:"omitempty,datetime=2006-01-02"`
	BookingTime *string `json:"bookingTime" validate:"omitempty,datetime=15:04"`
	Duration    *int    `json:"duration" validate:"omitempty,min=15,max=240"`
	Status      *string `json:"status"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	BookingDate string    `json:"bookingDate"`
	BookingTime string    `json:"bookingTime"`
	Duration    int       `json:"duration"`
	Status      string    `json:"status"`
	Message     *string   `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewBookingResponse(b *models.MentorshipBooking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		UserName:    b.User.Name,
		UserEmail:   b.User.Email,
		BookingDate: b.BookingDate.Format("2006-01-02"),
		BookingTime: b.BookingTime,
		Duration:    b.Duration,
		Status:      b.Status,
		Message:     b.Message,
		CreatedAt:   b.CreatedAt,
	}
}
