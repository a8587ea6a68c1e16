package models

import (
	"time"

	"github.com/google/uuid"
)

// Content is a freeform catalog item (file, video or external link) gated by
// AllowedPlans, a comma-joined list of plan tags.
type Content struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"not null;size:255" json:"title"`
	Description  *string   `gorm:"type:text" json:"description"`
	FileURL      *string   `gorm:"type:text" json:"fileUrl"`
	VideoURL     *string   `gorm:"type:text" json:"videoUrl"`
	LinkURL      *string   `gorm:"type:text" json:"linkUrl"`
	ContentType  *string   `gorm:"size:50" json:"contentType"`
	AllowedPlans string    `gorm:"not null;size:100;default:'basic,advanced,premium'" json:"allowedPlans"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
