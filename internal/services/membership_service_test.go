package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitclub_backend/internal/models"
	"fitclub_backend/pkg/apperrors"
)

func TestSubscribeByTier(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	user := userRepo.add(&models.User{Name: "Dana", Email: "dana@example.com"})
	svc := NewMembershipService(newFakePlanRepo(), userRepo)

	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	sub, err := svc.SubscribeByTier(nil, user.ID.String(), "PREMIUM", now)

	require.NoError(t, err)
	assert.Equal(t, "PREMIUM", *sub.Plan)
	assert.Equal(t, now, sub.StartsAt)
	assert.Equal(t, now.AddDate(0, 1, 0), sub.EndsAt, "tier subscriptions run one calendar month")
	assert.Equal(t, 3, *sub.TrainersLimit)
	assert.Equal(t, 5, *sub.FreeProductsPerMonth)

	assert.Equal(t, models.PlanTierPremium, *user.MembershipPlan)
	assert.True(t, user.HasActivePlan(now.AddDate(0, 0, 20)))
}

func TestSubscribeByTier_LimitsTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tier     string
		trainers int
		freebies int
	}{
		{"PREMIUM", 3, 5},
		{"GOLD", 2, 2},
		{"SILVER", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			userRepo := newFakeUserRepo()
			user := userRepo.add(&models.User{Email: tt.tier + "@example.com"})
			svc := NewMembershipService(newFakePlanRepo(), userRepo)

			sub, err := svc.SubscribeByTier(nil, user.ID.String(), tt.tier, time.Now())

			require.NoError(t, err)
			assert.Equal(t, tt.trainers, *sub.TrainersLimit)
			assert.Equal(t, tt.freebies, *sub.FreeProductsPerMonth)
		})
	}
}

func TestSubscribeByTier_UnknownTier(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	user := userRepo.add(&models.User{Email: "x@example.com"})
	svc := NewMembershipService(newFakePlanRepo(), userRepo)

	_, err := svc.SubscribeByTier(nil, user.ID.String(), "PLATINUM", time.Now())

	assert.ErrorIs(t, err, apperrors.ErrInvalidPlanTier)
}

func TestSubscribeByPlanID_DurationAndWindow(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	planRepo := newFakePlanRepo()
	user := userRepo.add(&models.User{Email: "dana@example.com"})
	plan := planRepo.add(&models.Plan{
		Name:         "Quarterly",
		Price:        250,
		DurationDays: intPtr(90),
		FreeProducts: intPtr(4),
		Active:       true,
	})
	svc := NewMembershipService(planRepo, userRepo)

	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	sub, err := svc.SubscribeByPlanID(nil, user.ID.String(), plan.ID.String(), now)

	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, 90), sub.EndsAt)
	assert.Equal(t, 4, *sub.FreeProductsPerMonth)
	assert.False(t, sub.PromoApplied)
}

func TestSubscribeByPlanID_DefaultDuration(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	planRepo := newFakePlanRepo()
	user := userRepo.add(&models.User{Email: "dana@example.com"})
	plan := planRepo.add(&models.Plan{Name: "Basic", Price: 50, Active: true})
	svc := NewMembershipService(planRepo, userRepo)

	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	sub, err := svc.SubscribeByPlanID(nil, user.ID.String(), plan.ID.String(), now)

	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, 30), sub.EndsAt, "duration defaults to 30 days")
	assert.Nil(t, sub.FreeProductsPerMonth)
}

func TestSubscribeByPlanID_PromoBonusAddedOnce(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	planRepo := newFakePlanRepo()
	user := userRepo.add(&models.User{Email: "dana@example.com"})

	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	pct := 80.0
	start, end := now.AddDate(0, 0, -1), now.AddDate(0, 0, 1)
	plan := planRepo.add(&models.Plan{
		Name:            "Flash",
		Price:           100,
		FreeProducts:    intPtr(2),
		DiscountPercent: &pct,
		PromoStartsAt:   &start,
		PromoEndsAt:     &end,
		Active:          true,
	})
	svc := NewMembershipService(planRepo, userRepo)

	sub, err := svc.SubscribeByPlanID(nil, user.ID.String(), plan.ID.String(), now)

	require.NoError(t, err)
	assert.True(t, sub.PromoApplied)
	assert.Equal(t, 3, *sub.FreeProductsPerMonth, "configured 2 plus promo bonus 1")
	assert.Equal(t, 1, sub.PromoBonus)
	assert.Equal(t, 3, *user.FreeProductsPerMonth)
}

func TestSubscribeByPlanID_PromoBonusAlone(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	planRepo := newFakePlanRepo()
	user := userRepo.add(&models.User{Email: "dana@example.com"})

	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	pct := 75.0
	start, end := now.AddDate(0, 0, -1), now.AddDate(0, 0, 1)
	bonus := 2
	plan := planRepo.add(&models.Plan{
		Name:                   "Promo Only",
		Price:                  60,
		DiscountPercent:        &pct,
		PromoStartsAt:          &start,
		PromoEndsAt:            &end,
		PromoBonusFreeProducts: &bonus,
		Active:                 true,
	})
	svc := NewMembershipService(planRepo, userRepo)

	sub, err := svc.SubscribeByPlanID(nil, user.ID.String(), plan.ID.String(), now)

	require.NoError(t, err)
	assert.Equal(t, 2, *sub.FreeProductsPerMonth, "promo bonus grants an allowance even without a configured allotment")
}

func TestSubscribeByPlanID_KeepsPriorLimits(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	planRepo := newFakePlanRepo()
	user := userRepo.add(&models.User{Email: "dana@example.com"})
	plan := planRepo.add(&models.Plan{Name: "Day Pass Bundle", Price: 40, Active: true})
	svc := NewMembershipService(planRepo, userRepo)

	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	_, err := svc.SubscribeByTier(nil, user.ID.String(), "PREMIUM", now)
	require.NoError(t, err)

	sub, err := svc.SubscribeByPlanID(nil, user.ID.String(), plan.ID.String(), now.AddDate(0, 0, 3))

	require.NoError(t, err)
	assert.Nil(t, sub.Plan, "a tier-less plan reports no tier")
	assert.Equal(t, models.PlanTierPremium, *user.MembershipPlan, "tier survives a tier-less plan")
	assert.Equal(t, 3, *user.TrainersLimit, "limit survives a plan that defines none")
	assert.Equal(t, 5, *user.FreeProductsPerMonth, "allowance survives a plan that defines none")
	assert.Equal(t, now.AddDate(0, 0, 33), *user.PlanEndsAt, "the window still moves")
}

func TestSubscribeByPlanID_TierOnPlanWritesMembership(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	planRepo := newFakePlanRepo()
	user := userRepo.add(&models.User{Email: "dana@example.com"})
	tier := models.PlanTierGold
	plan := planRepo.add(&models.Plan{
		Name:          "Gold Quarterly",
		Price:         150,
		Tier:          &tier,
		TrainersLimit: intPtr(2),
		Active:        true,
	})
	svc := NewMembershipService(planRepo, userRepo)

	sub, err := svc.SubscribeByPlanID(nil, user.ID.String(), plan.ID.String(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, "GOLD", *sub.Plan)
	assert.Equal(t, models.PlanTierGold, *user.MembershipPlan)
}

func TestSubscribeByPlanID_PlanMissing(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	user := userRepo.add(&models.User{Email: "dana@example.com"})
	svc := NewMembershipService(newFakePlanRepo(), userRepo)

	_, err := svc.SubscribeByPlanID(nil, user.ID.String(), "2e9f0f6e-0000-0000-0000-000000000000", time.Now())

	assert.ErrorIs(t, err, apperrors.ErrPlanNotFound)
}

func TestListPlans_PromoAnnotation(t *testing.T) {
	t.Parallel()

	planRepo := newFakePlanRepo()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	pct := 70.0
	start, end := now.AddDate(0, 0, -1), now.AddDate(0, 0, 1)
	planRepo.add(&models.Plan{
		Name:            "Flash",
		Price:           100,
		DiscountPercent: &pct,
		PromoStartsAt:   &start,
		PromoEndsAt:     &end,
		Active:          true,
	})
	svc := NewMembershipService(planRepo, newFakeUserRepo())

	plans, err := svc.ListPlans(nil, now)

	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.True(t, plans[0].IsPromoActive)
	require.NotNil(t, plans[0].DiscountedPrice)
	assert.Equal(t, 30.0, *plans[0].DiscountedPrice)
}
