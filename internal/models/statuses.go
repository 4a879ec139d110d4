package models

type UserRole string

const (
	UserRoleUser    UserRole = "USER"
	UserRoleTrainer UserRole = "TRAINER"
	UserRoleOwner   UserRole = "OWNER"
	UserRoleAdmin   UserRole = "ADMIN"
)

// PlanTier is the legacy membership enum kept for the
// subscribe-by-tier path.
type PlanTier string

const (
	PlanTierPremium PlanTier = "PREMIUM"
	PlanTierGold    PlanTier = "GOLD"
	PlanTierSilver  PlanTier = "SILVER"
)

type PaymentMethod string

const (
	PaymentMethodCOD PaymentMethod = "COD"
	PaymentMethodUPI PaymentMethod = "UPI"
)

type OrderStatus string

// Orders confirm immediately; there is no payment-gateway step and no
// cancellation state.
const (
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
)
