package services

import (
	"gorm.io/gorm"

	"fitclub_backend/internal/auth"
	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/apperrors"
)

type TrainerService interface {
	List(db *gorm.DB) ([]dto.TrainerResponse, error)
	Get(db *gorm.DB, trainerID string) (*dto.TrainerResponse, error)
	Create(db *gorm.DB, req *dto.CreateTrainerRequest) (*dto.TrainerResponse, error)
	Update(db *gorm.DB, trainerID string, req *dto.UpdateTrainerRequest) (*dto.TrainerResponse, error)
	Delete(db *gorm.DB, trainerID string) error
}

type TrainerServiceImpl struct {
	trainerRepo repositories.TrainerRepository
}

func NewTrainerService(trainerRepo repositories.TrainerRepository) TrainerService {
	return &TrainerServiceImpl{trainerRepo: trainerRepo}
}

func (s *TrainerServiceImpl) List(db *gorm.DB) ([]dto.TrainerResponse, error) {
	trainers, err := s.trainerRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTrainerResponses(trainers), nil
}

func (s *TrainerServiceImpl) Get(db *gorm.DB, trainerID string) (*dto.TrainerResponse, error) {
	trainer, err := s.trainerRepo.FindByID(db, trainerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTrainerNotFound) {
			return nil, apperrors.ErrTrainerNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewTrainerResponse(trainer)
	return &resp, nil
}

// Create registers a trainer; portal credentials are optional and can be
// added later with an update.
func (s *TrainerServiceImpl) Create(db *gorm.DB, req *dto.CreateTrainerRequest) (*dto.TrainerResponse, error) {
	trainer := &models.Trainer{
		Name:         req.Name,
		Email:        normalizeEmail(req.Email),
		Speciality:   req.Speciality,
		ExperienceYr: req.ExperienceYr,
		PhotoURL:     req.PhotoURL,
		Bio:          req.Bio,
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		trainer.PasswordHash = hash
	}

	if err := s.trainerRepo.Create(db, trainer); err != nil {
		if apperrors.Is(err, repositories.ErrTrainerEmailTaken) {
			return nil, apperrors.ErrTrainerEmailTaken
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewTrainerResponse(trainer)
	return &resp, nil
}

func (s *TrainerServiceImpl) Update(db *gorm.DB, trainerID string, req *dto.UpdateTrainerRequest) (*dto.TrainerResponse, error) {
	trainer, err := s.trainerRepo.FindByID(db, trainerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTrainerNotFound) {
			return nil, apperrors.ErrTrainerNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		trainer.Name = *req.Name
	}
	if req.Speciality != nil {
		trainer.Speciality = *req.Speciality
	}
	if req.ExperienceYr != nil {
		trainer.ExperienceYr = *req.ExperienceYr
	}
	if req.PhotoURL != nil {
		trainer.PhotoURL = req.PhotoURL
	}
	if req.Bio != nil {
		trainer.Bio = req.Bio
	}

	if err := s.trainerRepo.Update(db, trainer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewTrainerResponse(trainer)
	return &resp, nil
}

func (s *TrainerServiceImpl) Delete(db *gorm.DB, trainerID string) error {
	if err := s.trainerRepo.Delete(db, trainerID); err != nil {
		if apperrors.Is(err, repositories.ErrTrainerNotFound) {
			return apperrors.ErrTrainerNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
