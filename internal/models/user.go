package models

import "time"

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`

	// Body metrics and profile, used by the workout-plan generator.
	HeightCm *int     `json:"heightCm,omitempty"`
	WeightKg *float64 `json:"weightKg,omitempty"`
	Place    *string  `gorm:"size:100" json:"place,omitempty"`
	Bio      *string  `gorm:"size:300" json:"bio,omitempty"`

	// Entitlement fields. Mutated only by the membership service; the
	// plan is active iff PlanEndsAt is in the future.
	MembershipPlan       *PlanTier  `gorm:"type:varchar(20)" json:"membershipPlan,omitempty"`
	PlanStartsAt         *time.Time `json:"planStartsAt,omitempty"`
	PlanEndsAt           *time.Time `json:"planEndsAt,omitempty"`
	TrainersLimit        *int       `json:"trainersLimit,omitempty"`
	FreeProductsPerMonth *int       `json:"freeProductsPerMonth,omitempty"`

	// Legacy single-trainer assignment; the UserTrainer join table is
	// the current many-to-many path.
	TrainerID *string  `gorm:"type:uuid;index" json:"trainerId,omitempty"`
	Trainer   *Trainer `gorm:"foreignKey:TrainerID" json:"trainer,omitempty"`
}

// HasActivePlan reports whether the membership window covers now.
func (u *User) HasActivePlan(now time.Time) bool {
	return u.PlanEndsAt != nil && u.PlanEndsAt.After(now)
}
