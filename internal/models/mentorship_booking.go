package models

import (
	"time"

	"github.com/google/uuid"
)

// Mentorship booking statuses. Any admin may set any status at any time; the
// only lifecycle guarantee is that bookings are created in pending.
const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusRejected  = "rejected"
	BookingStatusCompleted = "completed"
)

// MentorshipBooking is a 1-on-1 session request. Only premium users may
// create one; the owner is always the caller.
type MentorshipBooking struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	BookingDate time.Time `gorm:"not null" json:"bookingDate"`
	BookingTime string    `gorm:"not null;size:5" json:"bookingTime"`
	Duration    int       `gorm:"not null" json:"duration"`
	Status      string    `gorm:"not null;size:20;default:'pending';index" json:"status"`
	Message     *string   `gorm:"type:text" json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
}

// ValidBookingStatus reports whether s is one of the closed status set.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected, BookingStatusCompleted:
		return true
	}
	return false
}
