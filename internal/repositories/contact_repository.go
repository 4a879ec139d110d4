package repositories

import (
	"gorm.io/gorm"

	"fitclub_backend/internal/models"
)

type ContactRepository interface {
	Create(db *gorm.DB, message *models.ContactMessage) error
	FindAll(db *gorm.DB) ([]models.ContactMessage, error)
}

type contactRepository struct{}

func NewContactRepository() ContactRepository {
	return &contactRepository{}
}

func (r *contactRepository) Create(db *gorm.DB, message *models.ContactMessage) error {
	return db.Create(message).Error
}

func (r *contactRepository) FindAll(db *gorm.DB) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}
