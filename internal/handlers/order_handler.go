package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitclub_backend/internal/dto"
	"fitclub_backend/internal/middleware"
	"fitclub_backend/internal/models"
	"fitclub_backend/internal/services"
	"fitclub_backend/pkg/apperrors"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{BaseHandler: base, orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", h.PlaceOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:orderId", h.GetOrder)
	}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.orderService.PlaceOrder(h.GetDB(c), userID, &req, time.Now())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	all := c.GetString("role") == string(models.UserRoleOwner)
	resp, err := h.orderService.ListOrders(h.GetDB(c), userID, all)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": resp})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.orderService.GetOrder(h.GetDB(c), c.Param("orderId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if resp.UserID != userID && c.GetString("role") != string(models.UserRoleOwner) {
		h.HandleServiceError(c, apperrors.NewForbiddenError("You do not have access to this order"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
