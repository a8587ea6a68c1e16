package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/models"
	"github.com/tradeacademy/backend/internal/plans"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrPremiumRequired      = errors.New("only premium users can book mentorship sessions")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
)

// BookingService runs the 1-on-1 mentorship scheduling workflow.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// Create books a session for the caller. Only premium users may book; the
// check happens before any row is written, so a forbidden attempt leaves no
// trace. New bookings always start pending.
func (s *BookingService) Create(userID uuid.UUID, req *dto.CreateBookingRequest) (*models.MentorshipBooking, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if user.Plan != plans.Premium {
		return nil, ErrPremiumRequired
	}

	date, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date: %w", err)
	}

	booking := models.MentorshipBooking{
		ID:          uuid.New(),
		UserID:      userID,
		BookingDate: date,
		BookingTime: req.BookingTime,
		Duration:    req.Duration,
		Status:      models.BookingStatusPending,
		Message:     req.Message,
		User:        user,
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return &booking, nil
}

// ListAll returns every booking with its owner, newest first. Admin view.
func (s *BookingService) ListAll() ([]models.MentorshipBooking, error) {
	var bookings []models.MentorshipBooking
	err := s.db.Preload("User").Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

// ListForUser returns the caller's own bookings, newest first.
func (s *BookingService) ListForUser(userID uuid.UUID) ([]models.MentorshipBooking, error) {
	var bookings []models.MentorshipBooking
	err := s.db.Preload("User").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) Get(id uuid.UUID) (*models.MentorshipBooking, error) {
	var booking models.MentorshipBooking
	if err := s.db.Preload("User").First(&booking, "id = ?", id).Error; err != nil {
		return nil, ErrBookingNotFound
	}
	return &booking, nil
}

// UpdateStatus sets the booking status. The status set is closed; unknown
// values are rejected rather than stored. Setting the current status again is
// a no-op that succeeds.
func (s *BookingService) UpdateStatus(id uuid.UUID, status string) (*models.MentorshipBooking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, ErrInvalidBookingStatus
	}

	booking, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if booking.Status == status {
		return booking, nil
	}

	booking.Status = status
	if err := s.db.Save(booking).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return booking, nil
}

// Update applies partial admin edits to a booking.
func (s *BookingService) Update(id uuid.UUID, req *dto.UpdateBookingRequest) (*models.MentorshipBooking, error) {
	booking, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.BookingDate != nil {
		date, err := time.Parse("2006-01-02", *req.BookingDate)
		if err != nil {
			return nil, fmt.Errorf("invalid booking date: %w", err)
		}
		booking.BookingDate = date
	}
	if req.BookingTime != nil {
		booking.BookingTime = *req.BookingTime
	}
	if req.Duration != nil {
		booking.Duration = *req.Duration
	}
	if req.Status != nil {
		if !models.ValidBookingStatus(*req.Status) {
			return nil, ErrInvalidBookingStatus
		}
		booking.Status = *req.Status
	}

	if err := s.db.Save(booking).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}
