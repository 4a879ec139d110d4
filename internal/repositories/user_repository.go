package repositories

import (
	"errors"

	"gorm.io/gorm"

	"fitclub_backend/internal/entitlements"
	"fitclub_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository persists members. Every method takes the request-scoped
// *gorm.DB so integration tests can run each request inside a rolled-back
// transaction.
type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	Update(db *gorm.DB, user *models.User) error
	UpdateProfile(db *gorm.DB, userID string, fields map[string]interface{}) error
	UpdateEntitlement(db *gorm.DB, userID string, grant entitlements.Grant) error
	SetLegacyTrainer(db *gorm.DB, userID string, trainerID *string) error
	CountAll(db *gorm.DB) (int64, error)
	FindByRole(db *gorm.DB, role models.UserRole) ([]models.User, error)
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("Trainer").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return db.Create(user).Error
}

func (r *userRepository) Update(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}

func (r *userRepository) UpdateProfile(db *gorm.DB, userID string, fields map[string]interface{}) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateEntitlement is the single write path for subscription activation.
// Both the tier and the plan-id flows funnel through it. Only the window
// is written unconditionally; nil grant fields keep whatever the user
// already has, so a plan that defines no limits never erases an earlier
// subscription's.
func (r *userRepository) UpdateEntitlement(db *gorm.DB, userID string, grant entitlements.Grant) error {
	updates := map[string]interface{}{
		"plan_starts_at": grant.StartsAt,
		"plan_ends_at":   grant.EndsAt,
	}
	if grant.Tier != nil {
		updates["membership_plan"] = grant.Tier
	}
	if grant.TrainersLimit != nil {
		updates["trainers_limit"] = grant.TrainersLimit
	}
	if grant.FreeProductsPerMonth != nil {
		updates["free_products_per_month"] = grant.FreeProductsPerMonth
	}
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) SetLegacyTrainer(db *gorm.DB, userID string, trainerID *string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update("trainer_id", trainerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) FindByRole(db *gorm.DB, role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := db.Where("role = ?", role).Order("created_at DESC").Find(&users).Error
	return users, err
}
