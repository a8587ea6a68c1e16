package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound = errors.New("purchase request not found")
	ErrInvalidStatus   = errors.New("invalid purchase request status")
	// ErrProvisionIncomplete marks the inconsistency window of the two-step
	// approval: the account exists but the request row could not be deleted.
	// The caller retries the deletion manually; nothing is rolled back.
	ErrProvisionIncomplete = errors.New("account created but purchase request was not removed")
)

// PurchaseService runs the purchase-request -> account workflow.
type PurchaseService struct {
	db    *gorm.DB
	users *UserService
}

func NewPurchaseService(db *gorm.DB, users *UserService) *PurchaseService {
	return &PurchaseService{db: db, users: users}
}

// Submit records an anonymous visitor's plan application. Duplicate
// submissions for the same email are allowed and all retained.
func (s *PurchaseService) Submit(req *dto.SubmitPurchaseRequest) (*models.PurchaseRequest, error) {
	request := models.PurchaseRequest{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		SelectedPlan: req.SelectedPlan,
		Status:       models.RequestStatusPending,
		Message:      req.Message,
	}

	if err := s.db.Create(&request).Error; err != nil {
		return nil, fmt.Errorf("failed to create purchase request: %w", err)
	}
	return &request, nil
}

func (s *PurchaseService) List() ([]models.PurchaseRequest, error) {
	var requests []models.PurchaseRequest
	err := s.db.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (s *PurchaseService) Get(id uuid.UUID) (*models.PurchaseRequest, error) {
	var request models.PurchaseRequest
	if err := s.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, ErrRequestNotFound
	}
	return &request, nil
}

// UpdateStatus sets the request status. The status set is closed; setting a
// status the row already has is a no-op that succeeds.
func (s *PurchaseService) UpdateStatus(id uuid.UUID, status string) (*models.PurchaseRequest, error) {
	if !models.ValidRequestStatus(status) {
		return nil, ErrInvalidStatus
	}

	request, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if request.Status == status {
		return request, nil
	}

	request.Status = status
	if err := s.db.Save(request).Error; err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	return request, nil
}

func (s *PurchaseService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.PurchaseRequest{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete purchase request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// Approve converts a request into an account in two non-transactional steps:
// create the user, then delete the request row. If user creation fails the
// request is untouched. If the deletion fails afterwards, the new account is
// kept and ErrProvisionIncomplete is returned so the admin can retry the
// deletion; there is deliberately no rollback.
func (s *PurchaseService) Approve(id uuid.UUID, req *dto.ApproveRequestBody) (*models.User, error) {
	request, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(&dto.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Plan:     req.Plan,
		Phone:    req.Phone,
		Roles:    []string{"user"},
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(request).Error; err != nil {
		return user, fmt.Errorf("%w: %v", ErrProvisionIncomplete, err)
	}
	return user, nil
}

// Counts returns request totals per status for the admin dashboard.
func (s *PurchaseService) Counts() (total, pending, approved, rejected int64, err error) {
	model := s.db.Model(&models.PurchaseRequest{})
	if err = model.Count(&total).Error; err != nil {
		return
	}
	byStatus := func(status string, dest *int64) error {
		return s.db.Model(&models.PurchaseRequest{}).Where("status = ?", status).Count(dest).Error
	}
	if err = byStatus(models.RequestStatusPending, &pending); err != nil {
		return
	}
	if err = byStatus(models.RequestStatusApproved, &approved); err != nil {
		return
	}
	err = byStatus(models.RequestStatusRejected, &rejected)
	return
}
