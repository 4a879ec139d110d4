package models

import (
	"time"

	"gorm.io/datatypes"
)

// Plan is a purchasable membership offering. Rows created by the owner
// carry their own limits, an optional legacy tier, and an optional
// promo window.
type Plan struct {
	BaseModel
	Name        string  `gorm:"not null" json:"name"`
	Description *string `gorm:"size:500" json:"description,omitempty"`
	Price       float64 `gorm:"not null" json:"price"`
	// Optional tier the plan maps onto. Subscribing writes it to the
	// user's membership_plan; tier-less plans leave that column alone.
	Tier          *PlanTier      `gorm:"type:varchar(16)" json:"tier,omitempty"`
	DurationDays  *int           `json:"durationDays,omitempty"`
	TrainersLimit *int           `json:"trainersLimit,omitempty"`
	FreeProducts  *int           `json:"freeProducts,omitempty"`
	Perks         datatypes.JSON `json:"perks,omitempty"`

	// Promotion window. A plan is "on promo" when the current time lies
	// inside [PromoStartsAt, PromoEndsAt] and DiscountPercent > 0.
	DiscountPercent        *float64   `json:"discountPercent,omitempty"`
	PromoStartsAt          *time.Time `json:"promoStartsAt,omitempty"`
	PromoEndsAt            *time.Time `json:"promoEndsAt,omitempty"`
	PromoBonusFreeProducts *int       `json:"promoBonusFreeProducts,omitempty"`

	Active bool `gorm:"not null;default:true" json:"active"`
}
