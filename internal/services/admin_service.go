package services

import (
	"gorm.io/gorm"

	"fitclub_backend/internal/auth"
	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/apperrors"
)

type AdminService interface {
	ListOwners(db *gorm.DB) ([]dto.UserResponse, error)
	CreateOwner(db *gorm.DB, req *dto.CreateOwnerRequest) (*dto.UserResponse, error)
	Profile(db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	Stats(db *gorm.DB) (*dto.StatsResponse, error)
}

type AdminServiceImpl struct {
	userRepo    repositories.UserRepository
	trainerRepo repositories.TrainerRepository
}

func NewAdminService(userRepo repositories.UserRepository, trainerRepo repositories.TrainerRepository) AdminService {
	return &AdminServiceImpl{userRepo: userRepo, trainerRepo: trainerRepo}
}

func (s *AdminServiceImpl) ListOwners(db *gorm.DB) ([]dto.UserResponse, error) {
	owners, err := s.userRepo.FindByRole(db, models.UserRoleOwner)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.UserResponse, 0, len(owners))
	for i := range owners {
		out = append(out, dto.NewUserResponse(&owners[i]))
	}
	return out, nil
}

func (s *AdminServiceImpl) CreateOwner(db *gorm.DB, req *dto.CreateOwnerRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	owner := &models.User{
		Name:         req.Name,
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Role:         models.UserRoleOwner,
	}
	if err := s.userRepo.Create(db, owner); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(owner)
	return &resp, nil
}

func (s *AdminServiceImpl) Profile(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *AdminServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.HeightCm != nil {
		fields["height_cm"] = *req.HeightCm
	}
	if req.WeightKg != nil {
		fields["weight_kg"] = *req.WeightKg
	}
	if req.Place != nil {
		fields["place"] = *req.Place
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateProfile(db, userID, fields); err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
	}
	return s.Profile(db, userID)
}

func (s *AdminServiceImpl) Stats(db *gorm.DB) (*dto.StatsResponse, error) {
	users, err := s.userRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	trainers, err := s.trainerRepo.CountAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	assigned, err := s.trainerRepo.CountAssignedUsers(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.StatsResponse{
		TotalUsers:    users,
		TotalTrainers: trainers,
		AssignedUsers: assigned,
	}, nil
}
