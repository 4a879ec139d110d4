package entitlements

import "sort"

// FreebieDiscount allocates the remaining free units against a cart
// flattened to per-unit prices and returns the total discount. The
// cheapest units go free first.
func FreebieDiscount(unitPrices []float64, remaining int) float64 {
	if remaining <= 0 || len(unitPrices) == 0 {
		return 0
	}
	prices := make([]float64, len(unitPrices))
	copy(prices, unitPrices)
	sort.Float64s(prices)

	n := remaining
	if n > len(prices) {
		n = len(prices)
	}
	var discount float64
	for _, p := range prices[:n] {
		discount += p
	}
	return discount
}
