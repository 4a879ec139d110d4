package dto

import (
	"time"

	"fitclub_backend/internal/models"
)

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
}

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Category    *string `json:"category,omitempty"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

type CartItemResponse struct {
	ID       string          `json:"id"`
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	LineSum  float64         `json:"lineSum"`
}

// CartResponse previews the settlement math so the storefront can show
// the member what the freebie allowance will knock off.
type CartResponse struct {
	Items             []CartItemResponse `json:"items"`
	Subtotal          float64            `json:"subtotal"`
	FreebiesRemaining int                `json:"freebiesRemaining"`
	PotentialDiscount float64            `json:"potentialDiscount"`
	EffectiveTotal    float64            `json:"effectiveTotal"`
}

type CreateOrderRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=COD UPI"`
	Address       string `json:"address" validate:"required,min=5,max=300"`
}

type OrderItemResponse struct {
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName,omitempty"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"paymentMethod"`
	Address       string              `json:"address"`
	Subtotal      float64             `json:"subtotal"`
	Discount      float64             `json:"discount"`
	Total         float64             `json:"total"`
	FreeUnits     int                 `json:"freeUnits"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func NewProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
	}
}

func NewOrderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		it := &o.Items[i]
		item := OrderItemResponse{
			ProductID:       it.ProductID.String(),
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase,
		}
		if it.Product != nil {
			item.ProductName = it.Product.Name
		}
		items = append(items, item)
	}
	return OrderResponse{
		ID:            o.ID.String(),
		UserID:        o.UserID.String(),
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		Address:       o.Address,
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		Total:         o.Total,
		FreeUnits:     o.FreeUnits,
		Items:         items,
		CreatedAt:     o.CreatedAt,
	}
}
