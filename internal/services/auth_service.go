package services

import (
	"time"

	"gorm.io/gorm"

	"fitclub_backend/internal/auth"
	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/apperrors"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	TrainerLogin(db *gorm.DB, req *dto.LoginRequest) (*dto.TrainerAuthResponse, error)
	Logout(tokenID string, expiresAt time.Time)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	trainerRepo repositories.TrainerRepository
	revocations *auth.RevocationStore
}

func NewAuthService(
	userRepo repositories.UserRepository,
	trainerRepo repositories.TrainerRepository,
	revocations *auth.RevocationStore,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		trainerRepo: trainerRepo,
		revocations: revocations,
	}
}

func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Role:         models.UserRoleUser,
		HeightCm:     req.HeightCm,
		WeightKg:     req.WeightKg,
		Place:        req.Place,
		Bio:          req.Bio,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID.String(), user.Name, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID.String(), user.Name, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

// TrainerLogin issues a TRAINER token against the trainers table, which
// is separate from the members table.
func (s *AuthServiceImpl) TrainerLogin(db *gorm.DB, req *dto.LoginRequest) (*dto.TrainerAuthResponse, error) {
	trainer, err := s.trainerRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrTrainerNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if trainer.PasswordHash == "" || !auth.CheckPasswordHash(req.Password, trainer.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(trainer.ID.String(), trainer.Name, string(models.UserRoleTrainer))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TrainerAuthResponse{Token: token, Trainer: dto.NewTrainerResponse(trainer)}, nil
}

// Logout revokes the presented token until its own expiry.
func (s *AuthServiceImpl) Logout(tokenID string, expiresAt time.Time) {
	s.revocations.Revoke(tokenID, expiresAt)
}
