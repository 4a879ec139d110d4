package services

import (
	"time"

	"gorm.io/gorm"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/entitlements"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/apperrors"
)

type UserService interface {
	Dashboard(db *gorm.DB, userID string, now time.Time) (*dto.DashboardResponse, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)

	// Legacy single-trainer selection.
	SelectTrainer(db *gorm.DB, userID string, req *dto.SelectTrainerRequest, now time.Time) error

	// Many-to-many assignment.
	ListTrainers(db *gorm.DB, userID string) ([]dto.TrainerResponse, error)
	AddTrainer(db *gorm.DB, userID, trainerID string, now time.Time) error
	RemoveTrainer(db *gorm.DB, userID, trainerID string) error
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	trainerRepo repositories.TrainerRepository
	orderRepo   repositories.OrderRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	trainerRepo repositories.TrainerRepository,
	orderRepo repositories.OrderRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		trainerRepo: trainerRepo,
		orderRepo:   orderRepo,
	}
}

func (s *UserServiceImpl) Dashboard(db *gorm.DB, userID string, now time.Time) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	membership := dto.MembershipInfo{
		StartsAt:             user.PlanStartsAt,
		EndsAt:               user.PlanEndsAt,
		Active:               user.HasActivePlan(now),
		TrainersLimit:        user.TrainersLimit,
		FreeProductsPerMonth: user.FreeProductsPerMonth,
	}
	if user.MembershipPlan != nil {
		plan := string(*user.MembershipPlan)
		membership.Plan = &plan
	}
	remaining, err := s.freebiesRemaining(db, user, now)
	if err != nil {
		return nil, err
	}
	membership.FreebiesRemaining = remaining

	assigned, err := s.trainerRepo.FindForUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.DashboardResponse{
		User:       dto.NewUserResponse(user),
		Membership: membership,
		Trainers:   dto.NewTrainerResponses(assigned),
	}
	if user.Trainer != nil {
		t := dto.NewTrainerResponse(user.Trainer)
		resp.Trainer = &t
	}
	return resp, nil
}

func (s *UserServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
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

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// SelectTrainer is the legacy one-trainer flow. Selecting the already
// assigned trainer is a no-op; switching requires replace=true.
func (s *UserServiceImpl) SelectTrainer(db *gorm.DB, userID string, req *dto.SelectTrainerRequest, now time.Time) error {
	user, err := s.gateTrainerSelection(db, userID, now)
	if err != nil {
		return err
	}

	if _, err := s.trainerRepo.FindByID(db, req.TrainerID); err != nil {
		if apperrors.Is(err, repositories.ErrTrainerNotFound) {
			return apperrors.ErrTrainerNotFound
		}
		return apperrors.InternalError(err)
	}

	if user.TrainerID != nil {
		if *user.TrainerID == req.TrainerID {
			return nil
		}
		if !req.Replace {
			return apperrors.ErrTrainerAlreadySelected
		}
	}

	if err := s.userRepo.SetLegacyTrainer(db, userID, &req.TrainerID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) ListTrainers(db *gorm.DB, userID string) ([]dto.TrainerResponse, error) {
	trainers, err := s.trainerRepo.FindForUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTrainerResponses(trainers), nil
}

// AddTrainer assigns one more trainer, bounded by the plan's limit. The
// upsert underneath makes re-adding the same trainer idempotent.
func (s *UserServiceImpl) AddTrainer(db *gorm.DB, userID, trainerID string, now time.Time) error {
	user, err := s.gateTrainerSelection(db, userID, now)
	if err != nil {
		return err
	}

	if _, err := s.trainerRepo.FindByID(db, trainerID); err != nil {
		if apperrors.Is(err, repositories.ErrTrainerNotFound) {
			return apperrors.ErrTrainerNotFound
		}
		return apperrors.InternalError(err)
	}

	already, err := s.trainerRepo.IsAssigned(db, userID, trainerID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if already {
		return nil
	}

	count, err := s.trainerRepo.CountForUser(db, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count >= int64(*user.TrainersLimit) {
		return apperrors.ErrTrainerLimitReached(*user.TrainersLimit)
	}

	if err := s.trainerRepo.Assign(db, userID, trainerID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) RemoveTrainer(db *gorm.DB, userID, trainerID string) error {
	if err := s.trainerRepo.Unassign(db, userID, trainerID); err != nil {
		if apperrors.Is(err, repositories.ErrAssignmentNotFound) {
			return apperrors.ErrUserNotAssigned
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// gateTrainerSelection enforces the membership preconditions shared by
// both selection flows: an active plan with a positive trainer limit.
func (s *UserServiceImpl) gateTrainerSelection(db *gorm.DB, userID string, now time.Time) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.HasActivePlan(now) {
		return nil, apperrors.ErrMembershipRequired
	}
	if user.TrainersLimit == nil || *user.TrainersLimit <= 0 {
		return nil, apperrors.ErrPlanWithoutTrainers
	}
	return user, nil
}

func (s *UserServiceImpl) freebiesRemaining(db *gorm.DB, user *models.User, now time.Time) (int, error) {
	if user.FreeProductsPerMonth == nil || *user.FreeProductsPerMonth <= 0 {
		return 0, nil
	}
	start, end := entitlements.MonthWindow(now)
	used, err := s.orderRepo.SumItemQuantityInWindow(db, user.ID.String(), start, end)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return entitlements.Remaining(user.FreeProductsPerMonth, used), nil
}
