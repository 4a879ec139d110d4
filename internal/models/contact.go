package models

type ContactMessage struct {
	BaseModel
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `gorm:"size:200;not null" json:"subject"`
	Message string `gorm:"size:2000;not null" json:"message"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
