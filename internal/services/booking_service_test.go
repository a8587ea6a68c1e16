package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/models"
)

func bookingRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		BookingDate: "2026-09-15",
		BookingTime: "14:30",
		Duration:    60,
	}
}

func TestBookingCreateRequiresPremium(t *testing.T) {
	db := newTestDB(t)
	s := NewBookingService(db)

	for _, plan := range []string{"basic", "advanced"} {
		user := seedUser(t, db, plan+"@example.com", plan)

		_, err := s.Create(user.ID, bookingRequest())
		assert.ErrorIs(t, err, ErrPremiumRequired)
	}

	// A forbidden attempt must not leave a row behind.
	var count int64
	require.NoError(t, db.Model(&models.MentorshipBooking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBookingCreatePremiumStartsPending(t *testing.T) {
	db := newTestDB(t)
	s := NewBookingService(db)
	user := seedUser(t, db, "premium@example.com", "premium")

	booking, err := s.Create(user.ID, bookingRequest())
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, "14:30", booking.BookingTime)
	assert.Equal(t, 60, booking.Duration)
	assert.Equal(t, "2026-09-15", booking.BookingDate.Format("2006-01-02"))
}

func TestBookingListScoping(t *testing.T) {
	db := newTestDB(t)
	s := NewBookingService(db)
	alice := seedUser(t, db, "alice@example.com", "premium")
	bob := seedUser(t, db, "bob@example.com", "premium")

	_, err := s.Create(alice.ID, bookingRequest())
	require.NoError(t, err)
	_, err = s.Create(bob.ID, bookingRequest())
	require.NoError(t, err)

	all, err := s.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := s.ListForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, alice.ID, own[0].UserID)
	assert.Equal(t, "alice@example.com", own[0].User.Email)
}

func TestBookingUpdateStatusRejectsUnknownValues(t *testing.T) {
	db := newTestDB(t)
	s := NewBookingService(db)
	user := seedUser(t, db, "premium@example.com", "premium")

	booking, err := s.Create(user.ID, bookingRequest())
	require.NoError(t, err)

	updated, err := s.UpdateStatus(booking.ID, models.BookingStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusApproved, updated.Status)

	_, err = s.UpdateStatus(booking.ID, "postponed")
	assert.ErrorIs(t, err, ErrInvalidBookingStatus)
}
