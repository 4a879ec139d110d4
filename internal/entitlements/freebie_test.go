package entitlements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreebieDiscount_CheapestUnitsFirst(t *testing.T) {
	t.Parallel()

	discount := FreebieDiscount([]float64{10, 5, 20}, 2)

	assert.Equal(t, 15.0, discount, "5 and 10 go free, not 20")
}

func TestFreebieDiscount_NoAllowance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, FreebieDiscount([]float64{10, 5}, 0))
	assert.Equal(t, 0.0, FreebieDiscount([]float64{10, 5}, -1))
}

func TestFreebieDiscount_EmptyCart(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, FreebieDiscount(nil, 3))
}

func TestFreebieDiscount_MoreAllowanceThanUnits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 35.0, FreebieDiscount([]float64{10, 5, 20}, 10), "entire cart free")
}

func TestFreebieDiscount_InputNotMutated(t *testing.T) {
	t.Parallel()

	prices := []float64{10, 5, 20}
	FreebieDiscount(prices, 2)

	assert.Equal(t, []float64{10, 5, 20}, prices)
}
