package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"ecohub/internal/service"
)

// OrderHandler handles order creation and listing for the caller.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrderRequest represents an order creation request.
type CreateOrderRequest struct {
	Total string `json:"total" validate:"required"`
}

// Create godoc
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateOrderRequest true "Order data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	total, err := decimal.NewFromString(req.Total)
	if err != nil {
		return badRequest("invalid total")
	}

	order, err := h.orderService.Create(c.Request().Context(), claims.UserID, total)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Order created",
		"orderId": order.ID,
	})
}

// ListMine godoc
// @Summary List the caller's orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 401 {object} errors.ErrorResponse
// @Router /orders/me [get]
func (h *OrderHandler) ListMine(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.ListMine(c.Request().Context(), claims.UserID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, orders)
}
