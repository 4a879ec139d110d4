package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fitclub_backend/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

// InsufficientStockError reports which product could not be decremented
// during settlement.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q", e.ProductName)
}

type OrderRepository interface {
	// SumItemQuantityInWindow totals the units a user purchased in
	// [start, end). The freebie allowance is recomputed from this, never
	// from a running counter.
	SumItemQuantityInWindow(db *gorm.DB, userID string, start, end time.Time) (int, error)

	// Settle atomically creates the order. The build callback runs
	// inside the transaction so the service can re-read the month's
	// usage against the same snapshot it settles under.
	Settle(db *gorm.DB, userID string, build func(tx *gorm.DB) (*models.Order, []models.OrderItem, error)) (*models.Order, error)

	FindByID(db *gorm.DB, id string) (*models.Order, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Order, error)
	FindAll(db *gorm.DB) ([]models.Order, error)
}

type orderRepository struct{}

func NewOrderRepository() OrderRepository {
	return &orderRepository{}
}

func (r *orderRepository) SumItemQuantityInWindow(db *gorm.DB, userID string, start, end time.Time) (int, error) {
	var total int64
	err := db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.created_at >= ? AND orders.created_at < ?", userID, start, end).
		Select("COALESCE(SUM(order_items.quantity), 0)").
		Scan(&total).Error
	return int(total), err
}

func (r *orderRepository) Settle(db *gorm.DB, userID string, build func(tx *gorm.DB) (*models.Order, []models.OrderItem, error)) (*models.Order, error) {
	var order *models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		built, items, err := build(tx)
		if err != nil {
			return err
		}

		// Guarded decrement: the WHERE clause makes check-and-apply one
		// statement, so concurrent settlements cannot oversell.
		for i := range items {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", items[i].ProductID, items[i].Quantity).
				Update("stock", gorm.Expr("stock - ?", items[i].Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				var product models.Product
				name := items[i].ProductID.String()
				if err := tx.First(&product, "id = ?", items[i].ProductID).Error; err == nil {
					name = product.Name
				}
				return &InsufficientStockError{ProductName: name}
			}
		}

		if err := tx.Create(built).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = built.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		built.Items = items
		order = built
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) FindByID(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items").Preload("Items.Product").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByUser(db *gorm.DB, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) FindAll(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	err := db.Preload("Items").Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
