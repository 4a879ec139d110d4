package dto

type RegisterRequest struct {
	Name            string   `json:"name" validate:"required,min=2,max=100"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=8"`
	ConfirmPassword string   `json:"confirmPassword" validate:"required,eqfield=Password"`
	HeightCm        *int     `json:"heightCm,omitempty" validate:"omitempty,gt=0"`
	WeightKg        *float64 `json:"weightKg,omitempty" validate:"omitempty,gt=0"`
	Place           *string  `json:"place,omitempty" validate:"omitempty,max=100"`
	Bio             *string  `json:"bio,omitempty" validate:"omitempty,max=300"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type TrainerAuthResponse struct {
	Token   string          `json:"token"`
	Trainer TrainerResponse `json:"trainer"`
}
