package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradeacademy/backend/internal/dto"
)

func TestAuthRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	s := NewAuthService(db, testConfig())

	resp, err := s.Register(&dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "supersecret",
		Name:     "New Member",
		Plan:     "basic",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, []string{"user"}, resp.User.Roles)

	login, err := s.Login(&dto.LoginRequest{Email: "new@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = s.Login(&dto.LoginRequest{Email: "new@example.com", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	s := NewAuthService(db, testConfig())

	req := &dto.RegisterRequest{
		Email:    "dup@example.com",
		Password: "supersecret",
		Name:     "First",
		Plan:     "basic",
	}
	_, err := s.Register(req)
	require.NoError(t, err)

	_, err = s.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthLoginRejectsDisabledAccount(t *testing.T) {
	db := newTestDB(t)
	s := NewAuthService(db, testConfig())

	resp, err := s.Register(&dto.RegisterRequest{
		Email:    "off@example.com",
		Password: "supersecret",
		Name:     "Disabled",
		Plan:     "basic",
	})
	require.NoError(t, err)

	require.NoError(t, db.Table("users").Where("id = ?", resp.User.ID).
		Update("is_active", false).Error)

	_, err = s.Login(&dto.LoginRequest{Email: "off@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestAuthRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	s := NewAuthService(db, testConfig())

	resp, err := s.Register(&dto.RegisterRequest{
		Email:    "rotate@example.com",
		Password: "supersecret",
		Name:     "Rotator",
		Plan:     "premium",
	})
	require.NoError(t, err)

	refreshed, err := s.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, refreshed.RefreshToken)

	// The spent token is revoked and cannot be replayed.
	_, err = s.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthLogoutRevokesRefreshToken(t *testing.T) {
	db := newTestDB(t)
	s := NewAuthService(db, testConfig())

	resp, err := s.Register(&dto.RegisterRequest{
		Email:    "bye@example.com",
		Password: "supersecret",
		Name:     "Leaver",
		Plan:     "basic",
	})
	require.NoError(t, err)

	require.NoError(t, s.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = s.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
