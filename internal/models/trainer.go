package models

import "github.com/google/uuid"

type Trainer struct {
	BaseModel
	Name         string  `gorm:"not null" json:"name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Speciality   string  `gorm:"size:100;not null" json:"speciality"`
	ExperienceYr int     `gorm:"not null;default:0" json:"experienceYr"`
	PhotoURL     *string `json:"photoUrl,omitempty"`
	Bio          *string `gorm:"size:500" json:"bio,omitempty"`
}

// UserTrainer is the assignment join table between members and trainers.
// A row means the member picked the trainer and the trainer sees the
// member in their portal.
type UserTrainer struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_trainer" json:"userId"`
	TrainerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_trainer" json:"trainerId"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Trainer *Trainer `gorm:"foreignKey:TrainerID" json:"trainer,omitempty"`
}

func (UserTrainer) TableName() string {
	return "user_trainers"
}
