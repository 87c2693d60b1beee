package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"ecohub/internal/service"
)

// PaymentHandler handles the mock payment endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// InitiateRequest represents a payment initiation request.
type InitiateRequest struct {
	Amount  string `json:"amount" validate:"required"`
	OrderID uint   `json:"order_id" validate:"required"`
}

// ConfirmRequest represents a payment confirmation request.
type ConfirmRequest struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
	OrderID         uint   `json:"order_id" validate:"required"`
}

// Initiate godoc
// @Summary Initiate a mock payment
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body InitiateRequest true "Payment data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /payment/initiate [post]
func (h *PaymentHandler) Initiate(c echo.Context) error {
	var req InitiateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("Amount and order ID are required")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return badRequest("invalid amount")
	}

	intent := h.paymentService.Initiate(amount, req.OrderID)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "Payment initiated",
		"paymentIntent": intent,
	})
}

// Confirm godoc
// @Summary Confirm a mock payment
// @Tags payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ConfirmRequest true "Confirmation data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /payment/confirm [post]
func (h *PaymentHandler) Confirm(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("Payment intent ID and order ID are required")
	}

	if err := h.paymentService.Confirm(c.Request().Context(), claims.UserID, req.PaymentIntentID, req.OrderID); err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Payment confirmed",
		"status":  "paid",
	})
}
