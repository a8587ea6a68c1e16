package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradeacademy/backend/internal/dto"
)

func TestUserCreateAndUpdate(t *testing.T) {
	db := newTestDB(t)
	s := NewUserService(db)

	user, err := s.Create(&dto.CreateUserRequest{
		Email:    "member@example.com",
		Password: "supersecret",
		Name:     "Member",
		Plan:     "basic",
		Roles:    []string{"user", "admin"},
	})
	require.NoError(t, err)
	assert.Equal(t, "user,admin", user.Roles)
	assert.True(t, user.HasRole("admin"))

	newPlan := "premium"
	inactive := false
	updated, err := s.Update(user.ID, &dto.UpdateUserRequest{
		Plan:     &newPlan,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "premium", updated.Plan)
	assert.False(t, updated.IsActive)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Member", updated.Name)
}

func TestUserDeleteIsSoft(t *testing.T) {
	db := newTestDB(t)
	s := NewUserService(db)
	user := seedUser(t, db, "gone@example.com", "basic")

	require.NoError(t, s.Delete(user.ID))

	_, err := s.GetByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	// The row is retained with a deletion marker.
	var count int64
	require.NoError(t, db.Table("users").Unscoped().
		Where("id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.ErrorIs(t, s.Delete(user.ID), ErrUserNotFound)
}

func TestUserCounts(t *testing.T) {
	db := newTestDB(t)
	s := NewUserService(db)

	seedUser(t, db, "one@example.com", "basic")
	off := seedUser(t, db, "two@example.com", "basic")
	require.NoError(t, db.Table("users").Where("id = ?", off.ID).
		Update("is_active", false).Error)

	total, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	active, err := s.CountActive()
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)
}
