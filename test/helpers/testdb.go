package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"fitclub_backend/internal/auth"
	"fitclub_backend/internal/models"
)

// CreateUser inserts the user, hashing the raw password first.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User, password string) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	user.PasswordHash = hash

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user %s: %v", user.Email, err)
	}
}

// CreateAndLoginUser creates the user and logs in through the API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, name, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Name:  name,
		Email: email,
		Role:  role,
	}
	CreateUser(t, tx, user, password)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginMember creates a USER account with a unique email.
func CreateAndLoginMember(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("member_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Member", email, "password123", models.UserRoleUser)
}

// CreateAndLoginOwner creates an OWNER account with a unique email.
func CreateAndLoginOwner(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("owner_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, tx, "Test Owner", email, "password123", models.UserRoleOwner)
}

// CreateTrainer inserts a trainer with a portal password.
func CreateTrainer(t *testing.T, tx *gorm.DB, name string) *models.Trainer {
	hash, err := auth.HashPassword("trainerpass123")
	if err != nil {
		t.Fatalf("Failed to hash trainer password: %v", err)
	}
	trainer := &models.Trainer{
		Name:         name,
		Email:        fmt.Sprintf("trainer_%d@test.com", time.Now().UnixNano()),
		PasswordHash: hash,
		Speciality:   "Strength",
		ExperienceYr: 5,
	}
	if err := tx.Create(trainer).Error; err != nil {
		t.Fatalf("Failed to create test trainer: %v", err)
	}
	return trainer
}

// LoginTrainer logs the trainer into the portal through the API.
func LoginTrainer(t *testing.T, ts *TestServer, tx *gorm.DB, trainer *models.Trainer) string {
	loginBody := map[string]interface{}{
		"email":    trainer.Email,
		"password": "trainerpass123",
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/trainer-auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Trainer login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err)
	return loginResponse.Token
}

// GiveMembership puts an active grant directly on the user row.
func GiveMembership(t *testing.T, tx *gorm.DB, user *models.User, tier models.PlanTier, trainersLimit, freebies int) {
	now := time.Now()
	ends := now.AddDate(0, 1, 0)
	updates := map[string]interface{}{
		"membership_plan":         tier,
		"plan_starts_at":          now,
		"plan_ends_at":            ends,
		"trainers_limit":          trainersLimit,
		"free_products_per_month": freebies,
	}
	if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		t.Fatalf("Failed to grant membership: %v", err)
	}
}

// CreateProduct inserts a shop product.
func CreateProduct(t *testing.T, tx *gorm.DB, name string, price float64, stock int) *models.Product {
	category := "supplements"
	product := &models.Product{
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: &category,
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return product
}
