package dto

import (
	"encoding/json"
	"time"

	"fitclub_backend/internal/models"
)

type CreatePlanRequest struct {
	Name                   string     `json:"name" validate:"required,min=2,max=100"`
	Description            *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	Price                  float64    `json:"price" validate:"gte=0"`
	Tier                   *string    `json:"tier,omitempty" validate:"omitempty,oneof=PREMIUM GOLD SILVER"`
	DurationDays           *int       `json:"durationDays,omitempty" validate:"omitempty,gt=0"`
	TrainersLimit          *int       `json:"trainersLimit,omitempty" validate:"omitempty,gte=0"`
	FreeProducts           *int       `json:"freeProducts,omitempty" validate:"omitempty,gte=0"`
	Perks                  []string   `json:"perks,omitempty"`
	DiscountPercent        *float64   `json:"discountPercent,omitempty" validate:"omitempty,gt=0,max=100"`
	PromoStartsAt          *time.Time `json:"promoStartsAt,omitempty"`
	PromoEndsAt            *time.Time `json:"promoEndsAt,omitempty"`
	PromoBonusFreeProducts *int       `json:"promoBonusFreeProducts,omitempty" validate:"omitempty,gte=0"`
}

type UpdatePlanRequest struct {
	Name                   *string    `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description            *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	Price                  *float64   `json:"price,omitempty" validate:"omitempty,gte=0"`
	Tier                   *string    `json:"tier,omitempty" validate:"omitempty,oneof=PREMIUM GOLD SILVER"`
	DurationDays           *int       `json:"durationDays,omitempty" validate:"omitempty,gt=0"`
	TrainersLimit          *int       `json:"trainersLimit,omitempty" validate:"omitempty,gte=0"`
	FreeProducts           *int       `json:"freeProducts,omitempty" validate:"omitempty,gte=0"`
	Perks                  []string   `json:"perks,omitempty"`
	DiscountPercent        *float64   `json:"discountPercent,omitempty" validate:"omitempty,gt=0,max=100"`
	PromoStartsAt          *time.Time `json:"promoStartsAt,omitempty"`
	PromoEndsAt            *time.Time `json:"promoEndsAt,omitempty"`
	PromoBonusFreeProducts *int       `json:"promoBonusFreeProducts,omitempty" validate:"omitempty,gte=0"`
	Active                 *bool      `json:"active,omitempty"`
}

type SubscribeByTierRequest struct {
	Plan string `json:"plan" validate:"required,oneof=PREMIUM GOLD SILVER"`
}

type SubscribeByPlanIDRequest struct {
	PlanID string `json:"planId" validate:"required,uuid"`
}

// PlanResponse annotates the stored plan with the evaluated promo state.
type PlanResponse struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	Description            *string    `json:"description,omitempty"`
	Price                  float64    `json:"price"`
	Tier                   *string    `json:"tier,omitempty"`
	DurationDays           *int       `json:"durationDays,omitempty"`
	TrainersLimit          *int       `json:"trainersLimit,omitempty"`
	FreeProducts           *int       `json:"freeProducts,omitempty"`
	Perks                  []string   `json:"perks,omitempty"`
	DiscountPercent        *float64   `json:"discountPercent,omitempty"`
	PromoStartsAt          *time.Time `json:"promoStartsAt,omitempty"`
	PromoEndsAt            *time.Time `json:"promoEndsAt,omitempty"`
	PromoBonusFreeProducts *int       `json:"promoBonusFreeProducts,omitempty"`
	Active                 bool       `json:"active"`
	IsPromoActive          bool       `json:"isPromoActive"`
	DiscountedPrice        *float64   `json:"discountedPrice,omitempty"`
}

type SubscriptionResponse struct {
	Plan                 *string   `json:"plan,omitempty"`
	PlanID               *string   `json:"planId,omitempty"`
	StartsAt             time.Time `json:"startsAt"`
	EndsAt               time.Time `json:"endsAt"`
	TrainersLimit        *int      `json:"trainersLimit,omitempty"`
	FreeProductsPerMonth *int      `json:"freeProductsPerMonth,omitempty"`
	PromoApplied         bool      `json:"promoApplied"`
	DiscountPercent      *float64  `json:"discountPercent,omitempty"`
	PromoBonus           int       `json:"promoBonus"`
}

func NewPlanResponse(p *models.Plan) PlanResponse {
	resp := PlanResponse{
		ID:                     p.ID.String(),
		Name:                   p.Name,
		Description:            p.Description,
		Price:                  p.Price,
		DurationDays:           p.DurationDays,
		TrainersLimit:          p.TrainersLimit,
		FreeProducts:           p.FreeProducts,
		DiscountPercent:        p.DiscountPercent,
		PromoStartsAt:          p.PromoStartsAt,
		PromoEndsAt:            p.PromoEndsAt,
		PromoBonusFreeProducts: p.PromoBonusFreeProducts,
		Active:                 p.Active,
	}
	if p.Tier != nil {
		tier := string(*p.Tier)
		resp.Tier = &tier
	}
	if len(p.Perks) > 0 {
		// Perks are stored as a JSON array; unmarshal errors leave the
		// field empty rather than failing the listing.
		_ = json.Unmarshal(p.Perks, &resp.Perks)
	}
	return resp
}
