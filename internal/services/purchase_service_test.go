package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/models"
	"gorm.io/gorm"
)

func TestPurchaseSubmitKeepsDuplicates(t *testing.T) {
	db := newTestDB(t)
	s := NewPurchaseService(db, NewUserService(db))

	first := submitRequest(t, s, "dup@example.com")
	second := submitRequest(t, s, "dup@example.com")

	assert.Equal(t, models.RequestStatusPending, first.Status)
	assert.NotEqual(t, first.ID, second.ID)

	requests, err := s.List()
	require.NoError(t, err)
	assert.Len(t, requests, 2)
}

func TestPurchaseUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	s := NewPurchaseService(db, NewUserService(db))
	request := submitRequest(t, s, "status@example.com")

	updated, err := s.UpdateStatus(request.ID, models.RequestStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, updated.Status)

	// Setting the same status again succeeds without touching the row.
	again, err := s.UpdateStatus(request.ID, models.RequestStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, again.Status)

	_, err = s.UpdateStatus(request.ID, "cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = s.UpdateStatus(uuid.New(), models.RequestStatusApproved)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestPurchaseApproveCreatesUserAndRemovesRequest(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	s := NewPurchaseService(db, users)
	request := submitRequest(t, s, "approve@example.com")

	user, err := s.Approve(request.ID, &dto.ApproveRequestBody{
		Email:    "approve@example.com",
		Password: "supersecret",
		Name:     "Applicant",
		Plan:     "advanced",
	})
	require.NoError(t, err)
	assert.Equal(t, "advanced", user.Plan)
	assert.True(t, user.HasRole("user"))

	_, err = s.Get(request.ID)
	assert.ErrorIs(t, err, ErrRequestNotFound)

	fetched, err := users.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "approve@example.com", fetched.Email)
}

func TestPurchaseApproveConflictLeavesRequestPending(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	s := NewPurchaseService(db, users)

	seedUser(t, db, "taken@example.com", "basic")
	request := submitRequest(t, s, "taken@example.com")

	_, err := s.Approve(request.ID, &dto.ApproveRequestBody{
		Email:    "taken@example.com",
		Password: "supersecret",
		Name:     "Applicant",
		Plan:     "premium",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The request must survive the failed approval untouched.
	kept, err := s.Get(request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, kept.Status)
}

func TestPurchaseApproveDeletionFailureKeepsUserAndRequest(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	s := NewPurchaseService(db, users)
	request := submitRequest(t, s, "stuck@example.com")

	// Make the request-row deletion fail after the account is created.
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").
		Register("purchase_delete_failure", func(tx *gorm.DB) {
			if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "purchase_requests" {
				tx.AddError(errors.New("connection reset"))
			}
		}))
	t.Cleanup(func() {
		_ = db.Callback().Delete().Remove("purchase_delete_failure")
	})

	user, err := s.Approve(request.ID, &dto.ApproveRequestBody{
		Email:    "stuck@example.com",
		Password: "supersecret",
		Name:     "Applicant",
		Plan:     "advanced",
	})
	assert.ErrorIs(t, err, ErrProvisionIncomplete)
	require.NotNil(t, user)

	// The account survives the half-finished approval.
	fetched, err := users.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "stuck@example.com", fetched.Email)

	// The stale request is still there for a manual retry.
	kept, err := s.Get(request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, kept.Status)
}

func TestPurchaseCounts(t *testing.T) {
	db := newTestDB(t)
	s := NewPurchaseService(db, NewUserService(db))

	submitRequest(t, s, "a@example.com")
	second := submitRequest(t, s, "b@example.com")
	third := submitRequest(t, s, "c@example.com")

	_, err := s.UpdateStatus(second.ID, models.RequestStatusApproved)
	require.NoError(t, err)
	_, err = s.UpdateStatus(third.ID, models.RequestStatusRejected)
	require.NoError(t, err)

	total, pending, approved, rejected, err := s.Counts()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(1), pending)
	assert.Equal(t, int64(1), approved)
	assert.Equal(t, int64(1), rejected)
}
