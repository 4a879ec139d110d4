package models

import "github.com/google/uuid"

type Order struct {
	BaseModel
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"userId"`
	Status        OrderStatus   `gorm:"type:varchar(20);not null;default:'CONFIRMED'" json:"status"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(10);not null" json:"paymentMethod"`
	Address       string        `gorm:"size:300;not null" json:"address"`

	// Totals are fixed at settlement time. FreeUnits counts the units
	// zeroed out by the membership freebie allowance.
	Subtotal  float64 `gorm:"not null" json:"subtotal"`
	Discount  float64 `gorm:"not null;default:0" json:"discount"`
	Total     float64 `gorm:"not null" json:"total"`
	FreeUnits int     `gorm:"not null;default:0" json:"freeUnits"`

	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"orderId"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"productId"`
	Quantity  int       `gorm:"not null" json:"quantity"`

	// PriceAtPurchase pins the unit price so later catalog edits do not
	// rewrite order history.
	PriceAtPurchase float64 `gorm:"not null" json:"priceAtPurchase"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
