package services

import (
	"time"

	"gorm.io/gorm"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/entitlements"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/repositories"
	"fitclub_backend/pkg/apperrors"
)

type ShopService interface {
	ListProducts(db *gorm.DB, category string) ([]dto.ProductResponse, error)
	GetProduct(db *gorm.DB, productID string) (*dto.ProductResponse, error)
	CreateProduct(db *gorm.DB, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	UpdateProduct(db *gorm.DB, productID string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(db *gorm.DB, productID string) error

	GetCart(db *gorm.DB, userID string, now time.Time) (*dto.CartResponse, error)
	AddToCart(db *gorm.DB, userID string, req *dto.AddCartItemRequest) error
	UpdateCartItem(db *gorm.DB, userID, itemID string, req *dto.UpdateCartItemRequest) error
	RemoveCartItem(db *gorm.DB, userID, itemID string) error
	ClearCart(db *gorm.DB, userID string) error
}

type ShopServiceImpl struct {
	shopRepo  repositories.ShopRepository
	userRepo  repositories.UserRepository
	orderRepo repositories.OrderRepository
}

func NewShopService(
	shopRepo repositories.ShopRepository,
	userRepo repositories.UserRepository,
	orderRepo repositories.OrderRepository,
) ShopService {
	return &ShopServiceImpl{
		shopRepo:  shopRepo,
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

func (s *ShopServiceImpl) ListProducts(db *gorm.DB, category string) ([]dto.ProductResponse, error) {
	products, err := s.shopRepo.FindProducts(db, category)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, dto.NewProductResponse(&products[i]))
	}
	return out, nil
}

func (s *ShopServiceImpl) GetProduct(db *gorm.DB, productID string) (*dto.ProductResponse, error) {
	product, err := s.shopRepo.FindProductByID(db, productID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewProductResponse(product)
	return &resp, nil
}

func (s *ShopServiceImpl) CreateProduct(db *gorm.DB, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	}
	if err := s.shopRepo.CreateProduct(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewProductResponse(product)
	return &resp, nil
}

func (s *ShopServiceImpl) UpdateProduct(db *gorm.DB, productID string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.shopRepo.FindProductByID(db, productID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	if req.Category != nil {
		product.Category = req.Category
	}

	if err := s.shopRepo.UpdateProduct(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewProductResponse(product)
	return &resp, nil
}

func (s *ShopServiceImpl) DeleteProduct(db *gorm.DB, productID string) error {
	if err := s.shopRepo.DeleteProduct(db, productID); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrProductNotFound):
			return apperrors.ErrProductNotFound
		case apperrors.Is(err, repositories.ErrProductReferenced):
			return apperrors.ErrProductReferenced
		default:
			return apperrors.InternalError(err)
		}
	}
	return nil
}

// GetCart previews the settlement math: the same allocator the order
// service uses prices out the freebie allowance.
func (s *ShopServiceImpl) GetCart(db *gorm.DB, userID string, now time.Time) (*dto.CartResponse, error) {
	items, err := s.shopRepo.FindCart(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	var unitPrices []float64
	for i := range items {
		item := &items[i]
		if item.Product == nil {
			continue
		}
		lineSum := item.Product.Price * float64(item.Quantity)
		resp.Subtotal += lineSum
		resp.Items = append(resp.Items, dto.CartItemResponse{
			ID:       item.ID.String(),
			Product:  dto.NewProductResponse(item.Product),
			Quantity: item.Quantity,
			LineSum:  lineSum,
		})
		for q := 0; q < item.Quantity; q++ {
			unitPrices = append(unitPrices, item.Product.Price)
		}
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if user.FreeProductsPerMonth != nil && *user.FreeProductsPerMonth > 0 {
		start, end := entitlements.MonthWindow(now)
		used, err := s.orderRepo.SumItemQuantityInWindow(db, userID, start, end)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.FreebiesRemaining = entitlements.Remaining(user.FreeProductsPerMonth, used)
		resp.PotentialDiscount = entitlements.FreebieDiscount(unitPrices, resp.FreebiesRemaining)
	}

	resp.EffectiveTotal = resp.Subtotal - resp.PotentialDiscount
	if resp.EffectiveTotal < 0 {
		resp.EffectiveTotal = 0
	}
	return resp, nil
}

func (s *ShopServiceImpl) AddToCart(db *gorm.DB, userID string, req *dto.AddCartItemRequest) error {
	product, err := s.shopRepo.FindProductByID(db, req.ProductID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return apperrors.ErrProductNotFound
		}
		return apperrors.InternalError(err)
	}
	if product.Stock < req.Quantity {
		return apperrors.ErrInsufficientStock(product.Name)
	}

	if _, err := s.shopRepo.UpsertCartItem(db, userID, req.ProductID, req.Quantity); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ShopServiceImpl) UpdateCartItem(db *gorm.DB, userID, itemID string, req *dto.UpdateCartItemRequest) error {
	if err := s.shopRepo.UpdateCartItemQuantity(db, userID, itemID, req.Quantity); err != nil {
		if apperrors.Is(err, repositories.ErrCartItemNotFound) {
			return apperrors.ErrCartItemNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ShopServiceImpl) RemoveCartItem(db *gorm.DB, userID, itemID string) error {
	if err := s.shopRepo.RemoveCartItem(db, userID, itemID); err != nil {
		if apperrors.Is(err, repositories.ErrCartItemNotFound) {
			return apperrors.ErrCartItemNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ShopServiceImpl) ClearCart(db *gorm.DB, userID string) error {
	if err := s.shopRepo.ClearCart(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
