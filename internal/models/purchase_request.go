package models

import (
	"time"

	"github.com/google/uuid"
)

// Purchase request statuses. Pending requests are reviewed by an admin and
// either rejected or approved (approval provisions a user account).
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// PurchaseRequest is an anonymous visitor's application for a plan. There is
// no uniqueness constraint on email: the same visitor may submit twice and
// both rows are kept. UserID is set only when the request has been linked to
// a provisioned account.
type PurchaseRequest struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"not null;size:255" json:"name"`
	Email        string     `gorm:"not null;size:255;index" json:"email"`
	Phone        string     `gorm:"not null;size:50" json:"phone"`
	SelectedPlan string     `gorm:"not null;size:20" json:"selectedPlan"`
	Status       string     `gorm:"not null;size:20;default:'pending';index" json:"status"`
	Message      *string    `gorm:"type:text" json:"message"`
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"userId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ValidRequestStatus reports whether s is one of the closed status set.
func ValidRequestStatus(s string) bool {
	return s == RequestStatusPending || s == RequestStatusApproved || s == RequestStatusRejected
}
