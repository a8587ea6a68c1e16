package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/models"
	"gorm.io/gorm"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

type AnnouncementService struct {
	db *gorm.DB
}

func NewAnnouncementService(db *gorm.DB) *AnnouncementService {
	return &AnnouncementService{db: db}
}

// ListRecent returns the newest announcements, capped at limit.
func (s *AnnouncementService) ListRecent(limit int) ([]models.Announcement, error) {
	if limit <= 0 {
		limit = 10
	}
	var announcements []models.Announcement
	err := s.db.Order("created_at DESC").Limit(limit).Find(&announcements).Error
	return announcements, err
}

func (s *AnnouncementService) Get(id uuid.UUID) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := s.db.First(&announcement, "id = ?", id).Error; err != nil {
		return nil, ErrAnnouncementNotFound
	}
	return &announcement, nil
}

func (s *AnnouncementService) Create(req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	announcement := models.Announcement{
		ID:      uuid.New(),
		Title:   req.Title,
		Message: req.Message,
	}

	if err := s.db.Create(&announcement).Error; err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return &announcement, nil
}

func (s *AnnouncementService) Update(id uuid.UUID, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	announcement, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Message != nil {
		announcement.Message = *req.Message
	}

	if err := s.db.Save(announcement).Error; err != nil {
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}
	return announcement, nil
}

func (s *AnnouncementService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Announcement{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete announcement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAnnouncementNotFound
	}
	return nil
}

func (s *AnnouncementService) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.Announcement{}).Count(&n).Error
	return n, err
}
