package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecohub/internal/service"
)

// SellerHandler handles public seller profiles and the application stub.
type SellerHandler struct {
	sellerService service.SellerService
}

// NewSellerHandler creates a new seller handler.
func NewSellerHandler(sellerService service.SellerService) *SellerHandler {
	return &SellerHandler{sellerService: sellerService}
}

// GetBySlug godoc
// @Summary Get a seller profile by username
// @Tags sellers
// @Produce json
// @Param slug path string true "Username"
// @Success 200 {object} model.PublicUser
// @Failure 404 {object} errors.ErrorResponse
// @Router /sellers/{slug} [get]
func (h *SellerHandler) GetBySlug(c echo.Context) error {
	profile, err := h.sellerService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Apply godoc
// @Summary Apply to become a seller
// @Tags sellers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /sellers/apply [post]
//
// Apply records nothing; admins review candidates straight from the pending
// sellers list, so this endpoint is an acknowledgment only.
func (h *SellerHandler) Apply(c echo.Context) error {
	if _, err := currentClaims(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Application submitted. Admin will review it soon.",
	})
}
