package entitlements

import "time"

// MonthWindow returns the first instant of now's calendar month and the
// first instant of the next month, both in now's location. Order history
// queries use the half-open interval [start, end).
func MonthWindow(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0)
	return start, end
}

// Remaining computes the freebie units left this month. A nil or
// non-positive limit means the member has no allowance at all.
func Remaining(limit *int, used int) int {
	if limit == nil || *limit <= 0 {
		return 0
	}
	r := *limit - used
	if r < 0 {
		return 0
	}
	return r
}

// Grant is the entitlement written to a user when a subscription is
// activated. Both the tier path and the plan-ID path build one of these
// so there is exactly one write shape. Nil fields are not written; the
// user keeps the corresponding values from a previous grant.
type Grant struct {
	Tier                 *string
	StartsAt             time.Time
	EndsAt               time.Time
	TrainersLimit        *int
	FreeProductsPerMonth *int
}
