package models

type Product struct {
	BaseModel
	Name        string  `gorm:"not null" json:"name"`
	Description *string `gorm:"size:500" json:"description,omitempty"`
	Price       float64 `gorm:"not null" json:"price"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Category    *string `gorm:"size:100;index" json:"category,omitempty"`
}
