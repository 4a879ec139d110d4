package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fitclub_backend/test/helpers"
)

func TestMembership_OwnerPlanManagementAndPublicListing(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	ownerToken, _ := helpers.CreateAndLoginOwner(t, ts, tx)

	planBody := map[string]interface{}{
		"name":          "Quarterly Strength",
		"price":         120.0,
		"durationDays":  90,
		"trainersLimit": 2,
		"freeProducts":  3,
		"perks":         []string{"sauna", "pool"},
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/owner/plans", ownerToken, planBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created struct {
		ID    string   `json:"id"`
		Perks []string `json:"perks"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.NotEmpty(t, created.ID)
	assert.Contains(t, created.Perks, "sauna")

	// The plan shows up on the public listing without a token.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/plans", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Quarterly Strength")

	// A plain member cannot touch the owner area.
	memberToken, _ := helpers.CreateAndLoginMember(t, ts, tx)
	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/owner/plans", memberToken, planBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestMembership_SubscribeByTier(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateAndLoginMember(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/membership/subscribe", token, map[string]interface{}{
		"plan": "PREMIUM",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var sub struct {
		Plan                 *string `json:"plan"`
		TrainersLimit        *int    `json:"trainersLimit"`
		FreeProductsPerMonth *int    `json:"freeProductsPerMonth"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &sub))
	if assert.NotNil(t, sub.Plan) {
		assert.Equal(t, "PREMIUM", *sub.Plan)
	}
	if assert.NotNil(t, sub.TrainersLimit) {
		assert.Equal(t, 3, *sub.TrainersLimit)
	}
	if assert.NotNil(t, sub.FreeProductsPerMonth) {
		assert.Equal(t, 5, *sub.FreeProductsPerMonth)
	}

	// The dashboard reflects the active membership.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/me/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var dashboard struct {
		Membership struct {
			Active bool    `json:"active"`
			Plan   *string `json:"plan"`
		} `json:"membership"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &dashboard))
	assert.True(t, dashboard.Membership.Active)

	// Unknown tiers are rejected.
	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/membership/subscribe", token, map[string]interface{}{
		"plan": "PLATINUM",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestMembership_SubscribeByPlanIDWithPromo(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	ownerToken, _ := helpers.CreateAndLoginOwner(t, ts, tx)

	now := time.Now()
	planBody := map[string]interface{}{
		"name":                   "Promo Plan",
		"price":                  100.0,
		"durationDays":           30,
		"trainersLimit":          1,
		"freeProducts":           2,
		"discountPercent":        80,
		"promoStartsAt":          now.Add(-time.Hour).Format(time.RFC3339),
		"promoEndsAt":            now.Add(time.Hour).Format(time.RFC3339),
		"promoBonusFreeProducts": 1,
	}
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/owner/plans", ownerToken, planBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created struct {
		ID              string   `json:"id"`
		IsPromoActive   bool     `json:"isPromoActive"`
		DiscountedPrice *float64 `json:"discountedPrice"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/plans/"+created.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.True(t, created.IsPromoActive)
	if assert.NotNil(t, created.DiscountedPrice) {
		assert.InDelta(t, 20.0, *created.DiscountedPrice, 0.001)
	}

	memberToken, _ := helpers.CreateAndLoginMember(t, ts, tx)
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/membership/subscribe-plan", memberToken, map[string]interface{}{
		"planId": created.ID,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var sub struct {
		PromoApplied         bool `json:"promoApplied"`
		PromoBonus           int  `json:"promoBonus"`
		FreeProductsPerMonth *int `json:"freeProductsPerMonth"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &sub))
	assert.True(t, sub.PromoApplied)
	assert.Equal(t, 1, sub.PromoBonus)
	if assert.NotNil(t, sub.FreeProductsPerMonth) {
		assert.Equal(t, 3, *sub.FreeProductsPerMonth)
	}
}

func TestMembership_TierlessPlanKeepsPriorLimits(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	ownerToken, _ := helpers.CreateAndLoginOwner(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/owner/plans", ownerToken, map[string]interface{}{
		"name":  "Day Pass Bundle",
		"price": 40.0,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

	memberToken, _ := helpers.CreateAndLoginMember(t, ts, tx)
	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/membership/subscribe", memberToken, map[string]interface{}{
		"plan": "PREMIUM",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// A plan that defines no tier or limits extends the window but must
	// not erase the PREMIUM entitlement.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/membership/subscribe-plan", memberToken, map[string]interface{}{
		"planId": created.ID,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/me/dashboard", memberToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var dashboard struct {
		Membership struct {
			Active               bool    `json:"active"`
			Plan                 *string `json:"plan"`
			TrainersLimit        *int    `json:"trainersLimit"`
			FreeProductsPerMonth *int    `json:"freeProductsPerMonth"`
		} `json:"membership"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &dashboard))
	assert.True(t, dashboard.Membership.Active)
	if assert.NotNil(t, dashboard.Membership.Plan) {
		assert.Equal(t, "PREMIUM", *dashboard.Membership.Plan)
	}
	if assert.NotNil(t, dashboard.Membership.TrainersLimit) {
		assert.Equal(t, 3, *dashboard.Membership.TrainersLimit)
	}
	if assert.NotNil(t, dashboard.Membership.FreeProductsPerMonth) {
		assert.Equal(t, 5, *dashboard.Membership.FreeProductsPerMonth)
	}
}
