package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/models"
	"github.com/tradeacademy/backend/internal/plans"
	"gorm.io/gorm"
)

var (
	ErrContentNotFound  = errors.New("content not found")
	ErrContentForbidden = errors.New("access denied")
	ErrInvalidPlanTags  = errors.New("allowedPlans must be a comma-joined list of known plans")
)

// ContentService serves the plan-gated freeform catalog.
type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

// ListForPlan returns the catalog items visible to a user on the given plan,
// oldest first.
func (s *ContentService) ListForPlan(plan string) ([]models.Content, error) {
	var items []models.Content
	err := s.db.Scopes(plans.ForPlan(plan)).Order("created_at ASC").Find(&items).Error
	return items, err
}

// GetForPlan fetches one item and re-validates access: the caller's own plan
// must be literally present in the item's allowed set, independent of the
// hierarchy applied to list filtering.
func (s *ContentService) GetForPlan(id uuid.UUID, plan string) (*models.Content, error) {
	var item models.Content
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, ErrContentNotFound
	}
	if !plans.Contains(item.AllowedPlans, plan) {
		return nil, ErrContentForbidden
	}
	return &item, nil
}

func (s *ContentService) Get(id uuid.UUID) (*models.Content, error) {
	var item models.Content
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, ErrContentNotFound
	}
	return &item, nil
}

func (s *ContentService) Create(req *dto.CreateContentRequest) (*models.Content, error) {
	allowed := req.AllowedPlans
	if allowed == "" {
		allowed = "basic,advanced,premium"
	}
	normalized, err := normalizePlanTags(allowed)
	if err != nil {
		return nil, err
	}

	item := models.Content{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		FileURL:      req.FileURL,
		VideoURL:     req.VideoURL,
		LinkURL:      req.LinkURL,
		ContentType:  req.ContentType,
		AllowedPlans: normalized,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}
	return &item, nil
}

func (s *ContentService) Update(id uuid.UUID, req *dto.UpdateContentRequest) (*models.Content, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.FileURL != nil {
		item.FileURL = req.FileURL
	}
	if req.VideoURL != nil {
		item.VideoURL = req.VideoURL
	}
	if req.LinkURL != nil {
		item.LinkURL = req.LinkURL
	}
	if req.ContentType != nil {
		item.ContentType = req.ContentType
	}
	if req.AllowedPlans != nil {
		normalized, err := normalizePlanTags(*req.AllowedPlans)
		if err != nil {
			return nil, err
		}
		item.AllowedPlans = normalized
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}
	return item, nil
}

func (s *ContentService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Content{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete content: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}
	return nil
}

func (s *ContentService) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.Content{}).Count(&n).Error
	return n, err
}

// normalizePlanTags trims and validates a comma-joined plan list. The list
// must be non-empty and every token a known plan.
func normalizePlanTags(joined string) (string, error) {
	parts := strings.Split(joined, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if tag == "" {
			continue
		}
		if !plans.IsValid(tag) {
			return "", ErrInvalidPlanTags
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return "", ErrInvalidPlanTags
	}
	return strings.Join(tags, ","), nil
}
