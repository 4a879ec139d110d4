package services

import (
	"gorm.io/gorm"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/apperrors"
)

type ContactService interface {
	Create(db *gorm.DB, req *dto.CreateContactRequest) (*dto.ContactResponse, error)
	List(db *gorm.DB) ([]dto.ContactResponse, error)
}

type ContactServiceImpl struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &ContactServiceImpl{contactRepo: contactRepo}
}

func (s *ContactServiceImpl) Create(db *gorm.DB, req *dto.CreateContactRequest) (*dto.ContactResponse, error) {
	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   normalizeEmail(req.Email),
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.contactRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewContactResponse(message)
	return &resp, nil
}

func (s *ContactServiceImpl) List(db *gorm.DB) ([]dto.ContactResponse, error) {
	messages, err := s.contactRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.ContactResponse, 0, len(messages))
	for i := range messages {
		out = append(out, dto.NewContactResponse(&messages[i]))
	}
	return out, nil
}
