package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is structured course material located by exactly one taxonomy bucket:
// a chapter, or a menu (optionally narrowed by submenu). OrderIndex is the
// sort key within a bucket.
type Post struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	VideoURL    *string   `gorm:"type:text" json:"videoUrl"`
	PdfURL      *string   `gorm:"type:text" json:"pdfUrl"`
	DocURL      *string   `gorm:"type:text" json:"docUrl"`
	ImageURL    *string   `gorm:"type:text" json:"imageUrl"`
	Chapter     *string   `gorm:"size:100;index" json:"chapter"`
	Menu        *string   `gorm:"size:100;index" json:"menu"`
	Submenu     *string   `gorm:"size:100;index" json:"submenu"`
	OrderIndex  int       `gorm:"not null;default:0" json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
