package dto

import "fitclub_backend/internal/models"

type CreateTrainerRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Email        string  `json:"email" validate:"required,email"`
	Password     *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Speciality   string  `json:"speciality" validate:"required,max=100"`
	ExperienceYr int     `json:"experienceYr" validate:"gte=0"`
	PhotoURL     *string `json:"photoUrl,omitempty" validate:"omitempty,url"`
	Bio          *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

type UpdateTrainerRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Speciality   *string `json:"speciality,omitempty" validate:"omitempty,max=100"`
	ExperienceYr *int    `json:"experienceYr,omitempty" validate:"omitempty,gte=0"`
	PhotoURL     *string `json:"photoUrl,omitempty" validate:"omitempty,url"`
	Bio          *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

type SelectTrainerRequest struct {
	TrainerID string `json:"trainerId" validate:"required,uuid"`
	Replace   bool   `json:"replace"`
}

type TrainerResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Speciality   string  `json:"speciality"`
	ExperienceYr int     `json:"experienceYr"`
	PhotoURL     *string `json:"photoUrl,omitempty"`
	Bio          *string `json:"bio,omitempty"`
}

func NewTrainerResponse(t *models.Trainer) TrainerResponse {
	return TrainerResponse{
		ID:           t.ID.String(),
		Name:         t.Name,
		Email:        t.Email,
		Speciality:   t.Speciality,
		ExperienceYr: t.ExperienceYr,
		PhotoURL:     t.PhotoURL,
		Bio:          t.Bio,
	}
}

func NewTrainerResponses(trainers []models.Trainer) []TrainerResponse {
	out := make([]TrainerResponse, 0, len(trainers))
	for i := range trainers {
		out = append(out, NewTrainerResponse(&trainers[i]))
	}
	return out
}
