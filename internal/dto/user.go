package dto

import (
	"time"

	"fitclub_backend/internal/models"
)

type UserResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	HeightCm *int     `json:"heightCm,omitempty"`
	WeightKg *float64 `json:"weightKg,omitempty"`
	Place    *string  `json:"place,omitempty"`
	Bio      *string  `json:"bio,omitempty"`
}

// MembershipInfo is the entitlement slice of the dashboard.
type MembershipInfo struct {
	Plan                 *string    `json:"plan,omitempty"`
	StartsAt             *time.Time `json:"startsAt,omitempty"`
	EndsAt               *time.Time `json:"endsAt,omitempty"`
	Active               bool       `json:"active"`
	TrainersLimit        *int       `json:"trainersLimit,omitempty"`
	FreeProductsPerMonth *int       `json:"freeProductsPerMonth,omitempty"`
	FreebiesRemaining    int        `json:"freebiesRemaining"`
}

type DashboardResponse struct {
	User       UserResponse      `json:"user"`
	Membership MembershipInfo    `json:"membership"`
	Trainer    *TrainerResponse  `json:"trainer,omitempty"`
	Trainers   []TrainerResponse `json:"trainers"`
}

type UpdateProfileRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	HeightCm *int     `json:"heightCm,omitempty" validate:"omitempty,gt=0"`
	WeightKg *float64 `json:"weightKg,omitempty" validate:"omitempty,gt=0"`
	Place    *string  `json:"place,omitempty" validate:"omitempty,max=100"`
	Bio      *string  `json:"bio,omitempty" validate:"omitempty,max=300"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		Name:     u.Name,
		Email:    u.Email,
		Role:     string(u.Role),
		HeightCm: u.HeightCm,
		WeightKg: u.WeightKg,
		Place:    u.Place,
		Bio:      u.Bio,
	}
}
