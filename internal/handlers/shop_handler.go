package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/middleware"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/services"
)

type ShopHandler struct {
	*BaseHandler
	shopService services.ShopService
}

func NewShopHandler(base *BaseHandler, shopService services.ShopService) *ShopHandler {
	return &ShopHandler{BaseHandler: base, shopService: shopService}
}

func (h *ShopHandler) RegisterRoutes(r *gin.RouterGroup) {
	products := r.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:productId", h.GetProduct)
	}

	owner := r.Group("/owner/products")
	owner.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleOwner))
	{
		owner.POST("", h.CreateProduct)
		owner.PUT("/:productId", h.UpdateProduct)
		owner.DELETE("/:productId", h.DeleteProduct)
	}

	cart := r.Group("/cart")
	cart.Use(middleware.AuthMiddleware())
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddToCart)
		cart.PUT("/items/:itemId", h.UpdateCartItem)
		cart.DELETE("/items/:itemId", h.RemoveCartItem)
		cart.DELETE("", h.ClearCart)
	}
}

func (h *ShopHandler) ListProducts(c *gin.Context) {
	resp, err := h.shopService.ListProducts(h.GetDB(c), c.Query("category"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resp})
}

func (h *ShopHandler) GetProduct(c *gin.Context) {
	resp, err := h.shopService.GetProduct(h.GetDB(c), c.Param("productId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ShopHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.shopService.CreateProduct(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ShopHandler) UpdateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.shopService.UpdateProduct(h.GetDB(c), c.Param("productId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ShopHandler) DeleteProduct(c *gin.Context) {
	if err := h.shopService.DeleteProduct(h.GetDB(c), c.Param("productId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func (h *ShopHandler) GetCart(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.shopService.GetCart(h.GetDB(c), userID, time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ShopHandler) AddToCart(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddCartItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.shopService.AddToCart(h.GetDB(c), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to cart"})
}

func (h *ShopHandler) UpdateCartItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.shopService.UpdateCartItem(h.GetDB(c), userID, c.Param("itemId"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

func (h *ShopHandler) RemoveCartItem(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.shopService.RemoveCartItem(h.GetDB(c), userID, c.Param("itemId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

func (h *ShopHandler) ClearCart(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.shopService.ClearCart(h.GetDB(c), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
