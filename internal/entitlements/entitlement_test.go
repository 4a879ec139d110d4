package entitlements

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthWindow(t *testing.T) {
	t.Parallel()

	loc, _ := time.LoadLocation("Asia/Almaty")
	now := time.Date(2026, 3, 15, 18, 30, 0, 0, loc)

	start, end := MonthWindow(now)

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, loc), end)
	assert.Equal(t, loc, start.Location(), "window stays in now's location")
}

func TestMonthWindow_DecemberRollsOver(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)
	start, end := MonthWindow(now)

	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Remaining(ptrI(5), 2))
	assert.Equal(t, 0, Remaining(ptrI(5), 5))
	assert.Equal(t, 0, Remaining(ptrI(5), 9), "never negative")
	assert.Equal(t, 0, Remaining(nil, 0), "no limit means no allowance")
	assert.Equal(t, 0, Remaining(ptrI(0), 0))
	assert.Equal(t, 0, Remaining(ptrI(-1), 0))
}
