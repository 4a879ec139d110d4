package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/email"
	"fitclub_backend/internal/entitlements"
	"fitclub_backend/internal/logger"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/apperrors"
)

type OrderService interface {
	PlaceOrder(db *gorm.DB, userID string, req *dto.CreateOrderRequest, now time.Time) (*dto.OrderResponse, error)
	ListOrders(db *gorm.DB, userID string, all bool) ([]dto.OrderResponse, error)
	GetOrder(db *gorm.DB, orderID string) (*dto.OrderResponse, error)
}

type OrderServiceImpl struct {
	orderRepo     repositories.OrderRepository
	shopRepo      repositories.ShopRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	shopRepo repositories.ShopRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) OrderService {
	return &OrderServiceImpl{
		orderRepo:     orderRepo,
		shopRepo:      shopRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// PlaceOrder settles the user's cart into a confirmed order. Pricing,
// the freebie discount and the stock decrements all happen inside one
// transaction; the used-this-month count is re-read against the same
// snapshot the settlement commits under.
func (s *OrderServiceImpl) PlaceOrder(db *gorm.DB, userID string, req *dto.CreateOrderRequest, now time.Time) (*dto.OrderResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	order, err := s.orderRepo.Settle(db, userID, func(tx *gorm.DB) (*models.Order, []models.OrderItem, error) {
		cart, err := s.shopRepo.FindCart(tx, userID)
		if err != nil {
			return nil, nil, err
		}
		if len(cart) == 0 {
			return nil, nil, apperrors.ErrEmptyCart
		}

		var (
			subtotal   float64
			unitPrices []float64
			items      []models.OrderItem
		)
		for i := range cart {
			line := &cart[i]
			if line.Product == nil {
				return nil, nil, fmt.Errorf("cart item %s has no product", line.ID)
			}
			subtotal += line.Product.Price * float64(line.Quantity)
			for q := 0; q < line.Quantity; q++ {
				unitPrices = append(unitPrices, line.Product.Price)
			}
			items = append(items, models.OrderItem{
				ProductID:       line.ProductID,
				Quantity:        line.Quantity,
				PriceAtPurchase: line.Product.Price,
			})
		}

		var discount float64
		var freeUnits int
		// The allowance outlives the plan window; only a missing or zero
		// allowance disables the discount.
		if user.FreeProductsPerMonth != nil && *user.FreeProductsPerMonth > 0 {
			start, end := entitlements.MonthWindow(now)
			used, err := s.orderRepo.SumItemQuantityInWindow(tx, userID, start, end)
			if err != nil {
				return nil, nil, err
			}
			remaining := entitlements.Remaining(user.FreeProductsPerMonth, used)
			discount = entitlements.FreebieDiscount(unitPrices, remaining)
			freeUnits = remaining
			if freeUnits > len(unitPrices) {
				freeUnits = len(unitPrices)
			}
		}

		total := subtotal - discount
		if total < 0 {
			total = 0
		}

		order := &models.Order{
			UserID:        user.ID,
			Status:        models.OrderStatusConfirmed,
			PaymentMethod: models.PaymentMethod(req.PaymentMethod),
			Address:       req.Address,
			Subtotal:      subtotal,
			Discount:      discount,
			Total:         total,
			FreeUnits:     freeUnits,
		}
		return order, items, nil
	})
	if err != nil {
		var stockErr *repositories.InsufficientStockError
		if errors.As(err, &stockErr) {
			return nil, apperrors.ErrInsufficientStock(stockErr.ProductName)
		}
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	// Confirmation mail is best effort; the order stands regardless.
	go s.sendConfirmation(user, order)

	resp := dto.NewOrderResponse(order)
	return &resp, nil
}

func (s *OrderServiceImpl) ListOrders(db *gorm.DB, userID string, all bool) ([]dto.OrderResponse, error) {
	var (
		orders []models.Order
		err    error
	)
	if all {
		orders, err = s.orderRepo.FindAll(db)
	} else {
		orders, err = s.orderRepo.FindByUser(db, userID)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, dto.NewOrderResponse(&orders[i]))
	}
	return out, nil
}

func (s *OrderServiceImpl) GetOrder(db *gorm.DB, orderID string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(db, orderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewOrderResponse(order)
	return &resp, nil
}

func (s *OrderServiceImpl) sendConfirmation(user *models.User, order *models.Order) {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour order %s is confirmed.\nSubtotal: %.2f\nDiscount: %.2f\nTotal: %.2f\n\nThank you for shopping with us.",
		user.Name, order.ID, order.Subtotal, order.Discount, order.Total,
	)
	msg := &email.Email{
		To:      []string{user.Email},
		Subject: "Order confirmed",
		Body:    body,
	}
	if err := s.emailProvider.Send(msg); err != nil {
		logger.CtxWithError(context.Background(), "order confirmation email failed", err,
			"order_id", order.ID.String(), "user_id", user.ID.String())
	}
}
