package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"ecohub/internal/service"
)

// ProductHandler handles the marketplace catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductRequest represents a product create or update payload. Name and
// price are mandatory; the rest defaults.
type ProductRequest struct {
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description"`
	Price          string  `json:"price" validate:"required"`
	CategoryID     *uint   `json:"category_id"`
	Stock          int     `json:"stock"`
	ImageURL       string  `json:"image_url"`
	EcoRating      *int    `json:"eco_rating"`
	CO2ReductionKg float64 `json:"co2_reduction_kg"`
}

func (r *ProductRequest) toInput() (service.ProductInput, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return service.ProductInput{}, err
	}
	return service.ProductInput{
		Name:           r.Name,
		Description:    r.Description,
		Price:          price,
		CategoryID:     r.CategoryID,
		Stock:          r.Stock,
		ImageURL:       r.ImageURL,
		EcoRating:      r.EcoRating,
		CO2ReductionKg: r.CO2ReductionKg,
	}, nil
}

// List godoc
// @Summary List approved products
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary Get a product by id
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest("invalid id")
	}

	product, err := h.productService.Get(c.Request().Context(), uint(id))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, product)
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ProductRequest true "Product data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("Name and price are required")
	}

	input, err := req.toInput()
	if err != nil {
		return badRequest("invalid price")
	}

	product, err := h.productService.Create(c.Request().Context(), input)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":   "Product created",
		"productId": product.ID,
	})
}

// Update godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body ProductRequest true "Product data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest("invalid id")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("Name and price are required")
	}

	input, err := req.toInput()
	if err != nil {
		return badRequest("invalid price")
	}

	if err := h.productService.Update(c.Request().Context(), uint(id), input); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product updated"})
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest("invalid id")
	}

	if err := h.productService.Delete(c.Request().Context(), uint(id)); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted"})
}
