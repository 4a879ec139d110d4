package repositories

import (
	"errors"

	"gorm.io/gorm"

	"fitclub_backend/internal/models"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Plan, error)
	FindActive(db *gorm.DB) ([]models.Plan, error)
	FindAll(db *gorm.DB) ([]models.Plan, error)
	Create(db *gorm.DB, plan *models.Plan) error
	Update(db *gorm.DB, plan *models.Plan) error
	Delete(db *gorm.DB, id string) error
}

type planRepository struct{}

func NewPlanRepository() PlanRepository {
	return &planRepository{}
}

func (r *planRepository) FindByID(db *gorm.DB, id string) (*models.Plan, error) {
	var plan models.Plan
	err := db.First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) FindActive(db *gorm.DB) ([]models.Plan, error) {
	var plans []models.Plan
	err := db.Where("active = ?", true).Order("price ASC").Find(&plans).Error
	return plans, err
}

func (r *planRepository) FindAll(db *gorm.DB) ([]models.Plan, error) {
	var plans []models.Plan
	err := db.Order("price ASC").Find(&plans).Error
	return plans, err
}

func (r *planRepository) Create(db *gorm.DB, plan *models.Plan) error {
	return db.Create(plan).Error
}

func (r *planRepository) Update(db *gorm.DB, plan *models.Plan) error {
	return db.Save(plan).Error
}

func (r *planRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Plan{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
