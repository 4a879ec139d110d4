package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/models"
	"fitclub_backend/pkg/apperrors"
)

func orderFixture(t *testing.T, trainersLimit, freebies int) (*fakeUserRepo, *fakeShopRepo, *fakeOrderRepo, *models.User, OrderService) {
	t.Helper()
	userRepo := newFakeUserRepo()
	shopRepo := newFakeShopRepo()
	orderRepo := newFakeOrderRepo(shopRepo)

	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	user := activeMember(userRepo, now, trainersLimit)
	if freebies > 0 {
		user.FreeProductsPerMonth = intPtr(freebies)
	}

	svc := NewOrderService(orderRepo, shopRepo, userRepo, &fakeEmailProvider{})
	return userRepo, shopRepo, orderRepo, user, svc
}

var orderReq = &dto.CreateOrderRequest{PaymentMethod: "COD", Address: "12 Abay Ave, Almaty"}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	t.Parallel()

	_, _, _, user, svc := orderFixture(t, 1, 0)

	_, err := svc.PlaceOrder(nil, user.ID.String(), orderReq, time.Now())

	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
}

func TestPlaceOrder_FreebieDiscountCheapestUnits(t *testing.T) {
	t.Parallel()

	_, shopRepo, _, user, svc := orderFixture(t, 1, 2)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	shake := shopRepo.addProduct(&models.Product{Name: "Protein Shake", Price: 5, Stock: 10})
	bar := shopRepo.addProduct(&models.Product{Name: "Energy Bar", Price: 10, Stock: 10})
	belt := shopRepo.addProduct(&models.Product{Name: "Lifting Belt", Price: 20, Stock: 10})
	shopRepo.addCartItem(user.ID.String(), bar, 1)
	shopRepo.addCartItem(user.ID.String(), shake, 1)
	shopRepo.addCartItem(user.ID.String(), belt, 1)

	order, err := svc.PlaceOrder(nil, user.ID.String(), orderReq, now)

	require.NoError(t, err)
	assert.Equal(t, 35.0, order.Subtotal)
	assert.Equal(t, 15.0, order.Discount, "the 5 and 10 units go free")
	assert.Equal(t, 20.0, order.Total)
	assert.Equal(t, 2, order.FreeUnits)
	assert.Equal(t, "CONFIRMED", order.Status)
}

func TestPlaceOrder_UsageReducesAllowance(t *testing.T) {
	t.Parallel()

	_, shopRepo, orderRepo, user, svc := orderFixture(t, 1, 2)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	orderRepo.used[user.ID.String()] = 1

	shake := shopRepo.addProduct(&models.Product{Name: "Protein Shake", Price: 5, Stock: 10})
	bar := shopRepo.addProduct(&models.Product{Name: "Energy Bar", Price: 10, Stock: 10})
	shopRepo.addCartItem(user.ID.String(), shake, 1)
	shopRepo.addCartItem(user.ID.String(), bar, 1)

	order, err := svc.PlaceOrder(nil, user.ID.String(), orderReq, now)

	require.NoError(t, err)
	assert.Equal(t, 5.0, order.Discount, "only one freebie left this month")
	assert.Equal(t, 10.0, order.Total)
}

func TestPlaceOrder_LapsedPlanKeepsAllowance(t *testing.T) {
	t.Parallel()

	_, shopRepo, _, user, svc := orderFixture(t, 1, 2)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	ended := now.AddDate(0, -1, 0)
	user.PlanEndsAt = &ended

	shake := shopRepo.addProduct(&models.Product{Name: "Protein Shake", Price: 5, Stock: 10})
	bar := shopRepo.addProduct(&models.Product{Name: "Energy Bar", Price: 10, Stock: 10})
	shopRepo.addCartItem(user.ID.String(), shake, 1)
	shopRepo.addCartItem(user.ID.String(), bar, 1)

	order, err := svc.PlaceOrder(nil, user.ID.String(), orderReq, now)

	require.NoError(t, err)
	assert.Equal(t, 15.0, order.Discount, "allowance applies while the column is set")
	assert.Zero(t, order.Total)
}

func TestPlaceOrder_NoPlanNoDiscount(t *testing.T) {
	t.Parallel()

	userRepo := newFakeUserRepo()
	shopRepo := newFakeShopRepo()
	orderRepo := newFakeOrderRepo(shopRepo)
	user := userRepo.add(&models.User{Name: "Guest", Email: "guest@example.com"})
	svc := NewOrderService(orderRepo, shopRepo, userRepo, &fakeEmailProvider{})

	shake := shopRepo.addProduct(&models.Product{Name: "Protein Shake", Price: 5, Stock: 10})
	shopRepo.addCartItem(user.ID.String(), shake, 2)

	order, err := svc.PlaceOrder(nil, user.ID.String(), orderReq, time.Now())

	require.NoError(t, err)
	assert.Equal(t, 10.0, order.Subtotal)
	assert.Zero(t, order.Discount)
	assert.Equal(t, 10.0, order.Total)
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	t.Parallel()

	_, shopRepo, orderRepo, user, svc := orderFixture(t, 1, 0)

	shake := shopRepo.addProduct(&models.Product{Name: "Protein Shake", Price: 5, Stock: 1})
	shopRepo.addCartItem(user.ID.String(), shake, 3)

	_, err := svc.PlaceOrder(nil, user.ID.String(), orderReq, time.Now())

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
	assert.Contains(t, appErr.Message, "Protein Shake")
	assert.Empty(t, orderRepo.orders, "settlement must roll back entirely")
	assert.Equal(t, 1, shake.Stock, "stock untouched on failure")
}

func TestPlaceOrder_SettlementSideEffects(t *testing.T) {
	t.Parallel()

	_, shopRepo, orderRepo, user, svc := orderFixture(t, 1, 0)

	shake := shopRepo.addProduct(&models.Product{Name: "Protein Shake", Price: 5, Stock: 10})
	shopRepo.addCartItem(user.ID.String(), shake, 4)

	order, err := svc.PlaceOrder(nil, user.ID.String(), orderReq, time.Now())

	require.NoError(t, err)
	assert.Len(t, orderRepo.orders, 1, "order persisted")
	assert.Equal(t, 6, shake.Stock, "stock decremented")
	assert.Empty(t, shopRepo.carts[user.ID.String()], "cart cleared")
	require.Len(t, order.Items, 1)
	assert.Equal(t, 5.0, order.Items[0].PriceAtPurchase, "price pinned at purchase time")
}

func TestGetOrder_NotFound(t *testing.T) {
	t.Parallel()

	_, _, _, _, svc := orderFixture(t, 1, 0)

	_, err := svc.GetOrder(nil, "9b1a34a4-0000-0000-0000-000000000000")

	assert.ErrorIs(t, err, apperrors.ErrOrderNotFound)
}
