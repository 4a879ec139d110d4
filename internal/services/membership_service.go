package services

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/entitlements"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/apperrors"
)

const defaultPlanDurationDays = 30

// tierLimits is the fixed legacy tier table. Configurable plans carry
// their own limits.
var tierLimits = map[models.PlanTier]struct {
	Trainers     int
	FreeProducts int
}{
	models.PlanTierPremium: {Trainers: 3, FreeProducts: 5},
	models.PlanTierGold:    {Trainers: 2, FreeProducts: 2},
	models.PlanTierSilver:  {Trainers: 1, FreeProducts: 1},
}

type MembershipService interface {
	ListPlans(db *gorm.DB, now time.Time) ([]dto.PlanResponse, error)
	GetPlan(db *gorm.DB, planID string, now time.Time) (*dto.PlanResponse, error)
	SubscribeByTier(db *gorm.DB, userID, tier string, now time.Time) (*dto.SubscriptionResponse, error)
	SubscribeByPlanID(db *gorm.DB, userID, planID string, now time.Time) (*dto.SubscriptionResponse, error)

	CreatePlan(db *gorm.DB, req *dto.CreatePlanRequest) (*dto.PlanResponse, error)
	UpdatePlan(db *gorm.DB, planID string, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	DeletePlan(db *gorm.DB, planID string) error
}

type MembershipServiceImpl struct {
	planRepo repositories.PlanRepository
	userRepo repositories.UserRepository
}

func NewMembershipService(planRepo repositories.PlanRepository, userRepo repositories.UserRepository) MembershipService {
	return &MembershipServiceImpl{planRepo: planRepo, userRepo: userRepo}
}

func (s *MembershipServiceImpl) ListPlans(db *gorm.DB, now time.Time) ([]dto.PlanResponse, error) {
	plans, err := s.planRepo.FindActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, annotatePlan(&plans[i], now))
	}
	return out, nil
}

func (s *MembershipServiceImpl) GetPlan(db *gorm.DB, planID string, now time.Time) (*dto.PlanResponse, error) {
	plan, err := s.planRepo.FindByID(db, planID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := annotatePlan(plan, now)
	return &resp, nil
}

// SubscribeByTier activates a fixed-tier membership for one calendar
// month.
func (s *MembershipServiceImpl) SubscribeByTier(db *gorm.DB, userID, tier string, now time.Time) (*dto.SubscriptionResponse, error) {
	limits, ok := tierLimits[models.PlanTier(tier)]
	if !ok {
		return nil, apperrors.ErrInvalidPlanTier
	}

	endsAt := now.AddDate(0, 1, 0)
	grant := entitlements.Grant{
		Tier:                 strPtr(tier),
		StartsAt:             now,
		EndsAt:               endsAt,
		TrainersLimit:        intPtr(limits.Trainers),
		FreeProductsPerMonth: intPtr(limits.FreeProducts),
	}
	if err := s.applyGrant(db, userID, grant); err != nil {
		return nil, err
	}

	return &dto.SubscriptionResponse{
		Plan:                 grant.Tier,
		StartsAt:             grant.StartsAt,
		EndsAt:               grant.EndsAt,
		TrainersLimit:        grant.TrainersLimit,
		FreeProductsPerMonth: grant.FreeProductsPerMonth,
	}, nil
}

// SubscribeByPlanID activates a configurable plan. An active promo adds
// its bonus to the monthly free-product allotment once, at subscription
// time.
func (s *MembershipServiceImpl) SubscribeByPlanID(db *gorm.DB, userID, planID string, now time.Time) (*dto.SubscriptionResponse, error) {
	plan, err := s.planRepo.FindByID(db, planID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	duration := defaultPlanDurationDays
	if plan.DurationDays != nil && *plan.DurationDays > 0 {
		duration = *plan.DurationDays
	}
	endsAt := now.AddDate(0, 0, duration)

	promo := entitlements.EvaluatePromotion(plan, now)

	var freebies *int
	switch {
	case plan.FreeProducts != nil:
		freebies = intPtr(*plan.FreeProducts + promo.BonusFreeProducts)
	case promo.Active:
		freebies = intPtr(promo.BonusFreeProducts)
	}

	var tier *string
	if plan.Tier != nil {
		tier = strPtr(string(*plan.Tier))
	}
	grant := entitlements.Grant{
		Tier:                 tier,
		StartsAt:             now,
		EndsAt:               endsAt,
		TrainersLimit:        plan.TrainersLimit,
		FreeProductsPerMonth: freebies,
	}
	if err := s.applyGrant(db, userID, grant); err != nil {
		return nil, err
	}

	planIDStr := plan.ID.String()
	return &dto.SubscriptionResponse{
		Plan:                 grant.Tier,
		PlanID:               &planIDStr,
		StartsAt:             grant.StartsAt,
		EndsAt:               grant.EndsAt,
		TrainersLimit:        grant.TrainersLimit,
		FreeProductsPerMonth: grant.FreeProductsPerMonth,
		PromoApplied:         promo.Active,
		DiscountPercent:      promo.DiscountPercent,
		PromoBonus:           promo.BonusFreeProducts,
	}, nil
}

func (s *MembershipServiceImpl) applyGrant(db *gorm.DB, userID string, grant entitlements.Grant) error {
	if err := s.userRepo.UpdateEntitlement(db, userID, grant); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *MembershipServiceImpl) CreatePlan(db *gorm.DB, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	plan := &models.Plan{
		Name:                   req.Name,
		Description:            req.Description,
		Price:                  req.Price,
		Tier:                   tierPtr(req.Tier),
		DurationDays:           req.DurationDays,
		TrainersLimit:          req.TrainersLimit,
		FreeProducts:           req.FreeProducts,
		DiscountPercent:        req.DiscountPercent,
		PromoStartsAt:          req.PromoStartsAt,
		PromoEndsAt:            req.PromoEndsAt,
		PromoBonusFreeProducts: req.PromoBonusFreeProducts,
		Active:                 true,
	}
	if len(req.Perks) > 0 {
		perks, err := json.Marshal(req.Perks)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		plan.Perks = datatypes.JSON(perks)
	}

	if err := s.planRepo.Create(db, plan); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := annotatePlan(plan, time.Now())
	return &resp, nil
}

func (s *MembershipServiceImpl) UpdatePlan(db *gorm.DB, planID string, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	plan, err := s.planRepo.FindByID(db, planID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = req.Description
	}
	if req.Tier != nil {
		plan.Tier = tierPtr(req.Tier)
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.DurationDays != nil {
		plan.DurationDays = req.DurationDays
	}
	if req.TrainersLimit != nil {
		plan.TrainersLimit = req.TrainersLimit
	}
	if req.FreeProducts != nil {
		plan.FreeProducts = req.FreeProducts
	}
	if req.Perks != nil {
		perks, err := json.Marshal(req.Perks)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		plan.Perks = datatypes.JSON(perks)
	}
	if req.DiscountPercent != nil {
		plan.DiscountPercent = req.DiscountPercent
	}
	if req.PromoStartsAt != nil {
		plan.PromoStartsAt = req.PromoStartsAt
	}
	if req.PromoEndsAt != nil {
		plan.PromoEndsAt = req.PromoEndsAt
	}
	if req.PromoBonusFreeProducts != nil {
		plan.PromoBonusFreeProducts = req.PromoBonusFreeProducts
	}
	if req.Active != nil {
		plan.Active = *req.Active
	}

	if err := s.planRepo.Update(db, plan); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := annotatePlan(plan, time.Now())
	return &resp, nil
}

func (s *MembershipServiceImpl) DeletePlan(db *gorm.DB, planID string) error {
	if err := s.planRepo.Delete(db, planID); err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return apperrors.ErrPlanNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func tierPtr(s *string) *models.PlanTier {
	if s == nil {
		return nil
	}
	tier := models.PlanTier(*s)
	return &tier
}

func annotatePlan(plan *models.Plan, now time.Time) dto.PlanResponse {
	resp := dto.NewPlanResponse(plan)
	promo := entitlements.EvaluatePromotion(plan, now)
	resp.IsPromoActive = promo.Active
	if promo.Active && promo.DiscountPercent != nil {
		discounted := entitlements.DiscountedPrice(plan.Price, *promo.DiscountPercent)
		resp.DiscountedPrice = &discounted
	}
	return resp
}
