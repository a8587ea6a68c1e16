package models

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is a broadcast message visible to any logged-in user.
type Announcement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Message   string    `gorm:"not null;type:text" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
