package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tradeacademy/backend/internal/config"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory SQLite database so each test gets an
// isolated schema that survives GORM's connection pooling.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.PurchaseRequest{},
		&models.Content{},
		&models.Post{},
		&models.Announcement{},
		&models.MentorshipBooking{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func seedUser(t *testing.T, db *gorm.DB, email, plan string) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "x",
		Name:     "Test User",
		Plan:     plan,
		Roles:    "user",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func submitRequest(t *testing.T, s *PurchaseService, email string) *models.PurchaseRequest {
	t.Helper()

	request, err := s.Submit(&dto.SubmitPurchaseRequest{
		Name:         "Applicant",
		Email:        email,
		Phone:        "+100000000",
		SelectedPlan: "advanced",
	})
	require.NoError(t, err)
	return request
}
