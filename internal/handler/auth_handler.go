package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ecohub/internal/service"
)

// AuthHandler handles registration, login and public user endpoints.
type AuthHandler struct {
	authService  service.AuthService
	userService  service.UserService
	statsService service.StatsService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, userService service.UserService, statsService service.StatsService) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		userService:  userService,
		statsService: statsService,
	}
}

// RegisterRequest represents a user registration request. All fields are
// required.
type RegisterRequest struct {
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	BirthMonth int    `json:"birthMonth" validate:"required,min=1,max=12"`
	BirthDay   int    `json:"birthDay" validate:"required,min=1,max=31"`
	BirthYear  int    `json:"birthYear" validate:"required"`
	Gender     string `json:"gender" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("All fields are required")
	}

	user, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		BirthMonth: req.BirthMonth,
		BirthDay:   req.BirthDay,
		BirthYear:  req.BirthYear,
		Gender:     req.Gender,
	})
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"userId":  user.ID,
	})
}

// Login godoc
// @Summary Login and receive a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest("Email and password are required")
	}

	accessToken, refreshToken, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "Login successful",
		"token":         accessToken,
		"refresh_token": refreshToken,
		"user": map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Refresh godoc
// @Summary Exchange a refresh token for a new session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	accessToken, err := h.authService.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"token": accessToken})
}

// Logout godoc
// @Summary Invalidate a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// ListUsers godoc
// @Summary List users with optional username search
// @Tags auth
// @Produce json
// @Param search query string false "Username substring"
// @Success 200 {array} model.PublicUser
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/users [get]
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get a public user profile
// @Tags auth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/user/{id} [get]
func (h *AuthHandler) GetUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest("invalid id")
	}

	profile, err := h.userService.GetUser(c.Request().Context(), uint(id))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// PublicStats godoc
// @Summary Public platform statistics
// @Tags auth
// @Produce json
// @Success 200 {object} service.Stats
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/stats [get]
func (h *AuthHandler) PublicStats(c echo.Context) error {
	stats, err := h.statsService.PublicStats(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
