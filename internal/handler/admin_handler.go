package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "ecohub/internal/errors"
	"ecohub/internal/model"
	"ecohub/internal/service"
)

// AdminHandler handles moderation and user management endpoints. Role
// gating happens in the router middleware; by the time these run the caller
// is a verified admin.
type AdminHandler struct {
	adminService service.AdminService
	statsService service.StatsService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService, statsService service.StatsService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		statsService: statsService,
	}
}

// UpdateRoleRequest represents a role change request.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// ListPendingSellers godoc
// @Summary List users awaiting seller approval
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PublicUser
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/sellers/pending [get]
func (h *AdminHandler) ListPendingSellers(c echo.Context) error {
	sellers, err := h.adminService.ListPendingSellers(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, sellers)
}

// ApproveSeller godoc
// @Summary Promote a pending user to seller
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/sellers/{id}/approve [post]
func (h *AdminHandler) ApproveSeller(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest("invalid id")
	}

	if err := h.adminService.ApproveSeller(c.Request().Context(), uint(id)); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Seller approved"})
}

// ListPendingProducts godoc
// @Summary List products awaiting moderation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Router /admin/products/pending [get]
func (h *AdminHandler) ListPendingProducts(c echo.Context) error {
	products, err := h.adminService.ListPendingProducts(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// ApproveProduct godoc
// @Summary Approve a pending product
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/products/{id}/approve [post]
func (h *AdminHandler) ApproveProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest("invalid id")
	}

	if err := h.adminService.ApproveProduct(c.Request().Context(), uint(id)); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product approved"})
}

// RejectProduct godoc
// @Summary Reject a pending product
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/products/{id}/reject [post]
func (h *AdminHandler) RejectProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest("invalid id")
	}

	if err := h.adminService.RejectProduct(c.Request().Context(), uint(id)); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product rejected"})
}

// ListPendingPosts returns an empty list. Post moderation was planned but a
// posts table never shipped; the endpoints are intentional stubs.
func (h *AdminHandler) ListPendingPosts(c echo.Context) error {
	return c.JSON(http.StatusOK, []struct{}{})
}

// ApprovePost is an intentional stub; see ListPendingPosts.
func (h *AdminHandler) ApprovePost(c echo.Context) error {
	return mapError(apperrors.ErrPostsNotImplemented)
}

// RejectPost is an intentional stub; see ListPendingPosts.
func (h *AdminHandler) RejectPost(c echo.Context) error {
	return mapError(apperrors.ErrPostsNotImplemented)
}

// PlatformStats godoc
// @Summary Platform statistics across all product states
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Stats
// @Router /admin/stats [get]
func (h *AdminHandler) PlatformStats(c echo.Context) error {
	stats, err := h.statsService.AdminStats(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// UpdateUserRole godoc
// @Summary Set a user's role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateRoleRequest true "New role"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id}/role [put]
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest("invalid id")
	}

	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	if err := h.adminService.UpdateUserRole(c.Request().Context(), uint(id), model.Role(req.Role)); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User role updated"})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest("invalid id")
	}

	if err := h.adminService.DeleteUser(c.Request().Context(), uint(id)); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted"})
}
