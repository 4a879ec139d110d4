package services

import (
	"gorm.io/gorm"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/email"
	"fitclub_backend/internal/planner"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/apperrors"
)

// PortalService serves the trainer portal: the members assigned to a
// trainer and the workout-plan mailing.
type PortalService interface {
	AssignedUsers(db *gorm.DB, trainerID string) ([]dto.UserResponse, error)
	SendPlanEmail(db *gorm.DB, trainerID, userID string) (*dto.UserResponse, error)
	Unassign(db *gorm.DB, trainerID, userID string) error
}

type PortalServiceImpl struct {
	trainerRepo   repositories.TrainerRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewPortalService(
	trainerRepo repositories.TrainerRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) PortalService {
	return &PortalServiceImpl{
		trainerRepo:   trainerRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *PortalServiceImpl) AssignedUsers(db *gorm.DB, trainerID string) ([]dto.UserResponse, error) {
	users, err := s.trainerRepo.FindUsersForTrainer(db, trainerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return out, nil
}

// SendPlanEmail generates the member's plan and mails it as a PDF. The
// trainer must actually be assigned to the member.
func (s *PortalServiceImpl) SendPlanEmail(db *gorm.DB, trainerID, userID string) (*dto.UserResponse, error) {
	assigned, err := s.trainerRepo.IsAssigned(db, userID, trainerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !assigned {
		return nil, apperrors.ErrUserNotAssigned
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	plan, err := planner.Generate(planner.UserMetrics{
		Name:     user.Name,
		Email:    user.Email,
		HeightCm: user.HeightCm,
		WeightKg: user.WeightKg,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	msg := &email.Email{
		To:      []string{user.Email},
		Subject: "Your 30-Day Workout & Nutrition Plan",
		Body:    "Hi " + user.Name + ",\n\nYour personalized 30-day plan is attached.\n\nStay consistent!",
		Attachments: []email.Attachment{{
			Name:        "workout-plan.pdf",
			Content:     plan.PDF,
			ContentType: "application/pdf",
		}},
	}
	if err := s.emailProvider.Send(msg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "portal",
			"Failed to send plan email", 502)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *PortalServiceImpl) Unassign(db *gorm.DB, trainerID, userID string) error {
	if err := s.trainerRepo.Unassign(db, userID, trainerID); err != nil {
		if apperrors.Is(err, repositories.ErrAssignmentNotFound) {
			return apperrors.ErrUserNotAssigned
		}
		return apperrors.InternalError(err)
	}
	return nil
}
