package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitclub_backend/internal/models"
)

var (
	ErrTrainerNotFound    = errors.New("trainer not found")
	ErrTrainerEmailTaken  = errors.New("trainer email already taken")
	ErrAssignmentNotFound = errors.New("assignment not found")
)

type TrainerRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Trainer, error)
	FindByEmail(db *gorm.DB, email string) (*models.Trainer, error)
	FindAll(db *gorm.DB) ([]models.Trainer, error)
	Create(db *gorm.DB, trainer *models.Trainer) error
	Update(db *gorm.DB, trainer *models.Trainer) error
	Delete(db *gorm.DB, id string) error
	CountAll(db *gorm.DB) (int64, error)

	// Assignment operations on the user_trainers join table.
	Assign(db *gorm.DB, userID, trainerID string) error
	Unassign(db *gorm.DB, userID, trainerID string) error
	IsAssigned(db *gorm.DB, userID, trainerID string) (bool, error)
	CountForUser(db *gorm.DB, userID string) (int64, error)
	FindForUser(db *gorm.DB, userID string) ([]models.Trainer, error)
	FindUsersForTrainer(db *gorm.DB, trainerID string) ([]models.User, error)
	CountAssignedUsers(db *gorm.DB) (int64, error)
}

type trainerRepository struct{}

func NewTrainerRepository() TrainerRepository {
	return &trainerRepository{}
}

func (r *trainerRepository) FindByID(db *gorm.DB, id string) (*models.Trainer, error) {
	var trainer models.Trainer
	err := db.First(&trainer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) FindByEmail(db *gorm.DB, email string) (*models.Trainer, error) {
	var trainer models.Trainer
	err := db.First(&trainer, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) FindAll(db *gorm.DB) ([]models.Trainer, error) {
	var trainers []models.Trainer
	err := db.Order("created_at ASC").Find(&trainers).Error
	return trainers, err
}

func (r *trainerRepository) Create(db *gorm.DB, trainer *models.Trainer) error {
	var existing models.Trainer
	if err := db.Where("email = ?", trainer.Email).First(&existing).Error; err == nil {
		return ErrTrainerEmailTaken
	}
	return db.Create(trainer).Error
}

func (r *trainerRepository) Update(db *gorm.DB, trainer *models.Trainer) error {
	return db.Save(trainer).Error
}

func (r *trainerRepository) Delete(db *gorm.DB, id string) error {
	// Remove assignments and clear legacy references in the same
	// transaction; a dangling trainer_id would break dashboard preloads.
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trainer_id = ?", id).Delete(&models.UserTrainer{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("trainer_id = ?", id).Update("trainer_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Trainer{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTrainerNotFound
		}
		return nil
	})
}

func (r *trainerRepository) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Trainer{}).Count(&count).Error
	return count, err
}

// Assign upserts the join row, making re-adding the same trainer a no-op.
func (r *trainerRepository) Assign(db *gorm.DB, userID, trainerID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return err
	}
	tid, err := uuid.Parse(trainerID)
	if err != nil {
		return err
	}
	row := models.UserTrainer{UserID: uid, TrainerID: tid}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "trainer_id"}},
		DoNothing: true,
	}).Create(&row).Error
}

func (r *trainerRepository) Unassign(db *gorm.DB, userID, trainerID string) error {
	result := db.Where("user_id = ? AND trainer_id = ?", userID, trainerID).Delete(&models.UserTrainer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func (r *trainerRepository) IsAssigned(db *gorm.DB, userID, trainerID string) (bool, error) {
	var count int64
	err := db.Model(&models.UserTrainer{}).
		Where("user_id = ? AND trainer_id = ?", userID, trainerID).
		Count(&count).Error
	return count > 0, err
}

func (r *trainerRepository) CountForUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.UserTrainer{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *trainerRepository) FindForUser(db *gorm.DB, userID string) ([]models.Trainer, error) {
	var trainers []models.Trainer
	err := db.
		Joins("JOIN user_trainers ON user_trainers.trainer_id = trainers.id").
		Where("user_trainers.user_id = ?", userID).
		Order("user_trainers.created_at ASC").
		Find(&trainers).Error
	return trainers, err
}

func (r *trainerRepository) FindUsersForTrainer(db *gorm.DB, trainerID string) ([]models.User, error) {
	var users []models.User
	err := db.
		Joins("JOIN user_trainers ON user_trainers.user_id = users.id").
		Where("user_trainers.trainer_id = ?", trainerID).
		Order("user_trainers.created_at ASC").
		Find(&users).Error
	return users, err
}

// CountAssignedUsers counts distinct members with at least one trainer.
func (r *trainerRepository) CountAssignedUsers(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.UserTrainer{}).Distinct("user_id").Count(&count).Error
	return count, err
}
