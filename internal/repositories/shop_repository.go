package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fitclub_backend/internal/models"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrProductReferenced = errors.New("product referenced by orders")
)

type ShopRepository interface {
	FindProductByID(db *gorm.DB, id string) (*models.Product, error)
	FindProducts(db *gorm.DB, category string) ([]models.Product, error)
	CreateProduct(db *gorm.DB, product *models.Product) error
	UpdateProduct(db *gorm.DB, product *models.Product) error
	DeleteProduct(db *gorm.DB, id string) error

	FindCart(db *gorm.DB, userID string) ([]models.CartItem, error)
	FindCartItem(db *gorm.DB, userID, itemID string) (*models.CartItem, error)
	UpsertCartItem(db *gorm.DB, userID, productID string, quantity int) (*models.CartItem, error)
	UpdateCartItemQuantity(db *gorm.DB, userID, itemID string, quantity int) error
	RemoveCartItem(db *gorm.DB, userID, itemID string) error
	ClearCart(db *gorm.DB, userID string) error
}

type shopRepository struct{}

func NewShopRepository() ShopRepository {
	return &shopRepository{}
}

func (r *shopRepository) FindProductByID(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := db.First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *shopRepository) FindProducts(db *gorm.DB, category string) ([]models.Product, error) {
	query := db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var products []models.Product
	err := query.Find(&products).Error
	return products, err
}

func (r *shopRepository) CreateProduct(db *gorm.DB, product *models.Product) error {
	return db.Create(product).Error
}

func (r *shopRepository) UpdateProduct(db *gorm.DB, product *models.Product) error {
	return db.Save(product).Error
}

// DeleteProduct refuses while order history references the product and
// sweeps cart references in the same transaction.
func (r *shopRepository) DeleteProduct(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.OrderItem{}).Where("product_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrProductReferenced
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Product{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}

func (r *shopRepository) FindCart(db *gorm.DB, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *shopRepository) FindCartItem(db *gorm.DB, userID, itemID string) (*models.CartItem, error) {
	var item models.CartItem
	err := db.Preload("Product").
		First(&item, "id = ? AND user_id = ?", itemID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// UpsertCartItem bumps the quantity when the product is already carted.
func (r *shopRepository) UpsertCartItem(db *gorm.DB, userID, productID string, quantity int) (*models.CartItem, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, err
	}

	item := models.CartItem{UserID: uid, ProductID: pid, Quantity: quantity}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("cart_items.quantity + ?", quantity)}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	var saved models.CartItem
	err = db.Preload("Product").
		First(&saved, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *shopRepository) UpdateCartItemQuantity(db *gorm.DB, userID, itemID string, quantity int) error {
	result := db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *shopRepository) RemoveCartItem(db *gorm.DB, userID, itemID string) error {
	result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *shopRepository) ClearCart(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
