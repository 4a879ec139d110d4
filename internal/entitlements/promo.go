// Package entitlements holds the pure membership math: promotion
// evaluation, the monthly freebie window, and the cheapest-units-free
// allocator. Nothing here touches the database.
package entitlements

import (
	"math"
	"time"

	"fitclub_backend/internal/models"
)

// MinPromoDiscountPercent is the floor below which a configured discount
// is treated as inactive. Flash promos are steep by definition.
const MinPromoDiscountPercent = 70.0

// DefaultPromoBonus is the free-product bonus granted by an active promo
// when the plan does not configure its own bonus count.
const DefaultPromoBonus = 1

// Promotion is the evaluated promo state of a plan at a point in time.
type Promotion struct {
	Active            bool
	DiscountPercent   *float64
	BonusFreeProducts int
}

// EvaluatePromotion decides whether a plan's promo window is live at now.
// The window is inclusive on both ends and both bounds must be present.
func EvaluatePromotion(plan *models.Plan, now time.Time) Promotion {
	if plan == nil || plan.DiscountPercent == nil || plan.PromoStartsAt == nil || plan.PromoEndsAt == nil {
		return Promotion{}
	}
	if *plan.DiscountPercent < MinPromoDiscountPercent {
		return Promotion{}
	}
	if now.Before(*plan.PromoStartsAt) || now.After(*plan.PromoEndsAt) {
		return Promotion{}
	}
	bonus := DefaultPromoBonus
	if plan.PromoBonusFreeProducts != nil {
		bonus = *plan.PromoBonusFreeProducts
	}
	pct := *plan.DiscountPercent
	return Promotion{Active: true, DiscountPercent: &pct, BonusFreeProducts: bonus}
}

// DiscountedPrice returns the display price after applying percent off,
// never negative, rounded to two decimals.
func DiscountedPrice(price, percent float64) float64 {
	p := price * (1 - percent/100)
	if p < 0 {
		p = 0
	}
	return math.Round(p*100) / 100
}
