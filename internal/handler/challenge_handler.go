package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ecohub/internal/service"
)

// ChallengeHandler handles the challenge catalog and enrollment endpoints.
type ChallengeHandler struct {
	challengeService service.ChallengeService
}

// NewChallengeHandler creates a new challenge handler.
func NewChallengeHandler(challengeService service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// ChallengeRequest represents a challenge create or update payload.
type ChallengeRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	PointsReward int     `json:"points_reward"`
	CO2SavingKg  float64 `json:"co2_saving_kg"`
	DurationDays int     `json:"duration_days"`
	ImageURL     string  `json:"image_url"`
	Category     string  `json:"category"`
}

// ProgressRequest represents an enrollment progress update.
type ProgressRequest struct {
	Progress int `json:"progress"`
}

func (r *ChallengeRequest) toInput() service.ChallengeInput {
	return service.ChallengeInput{
		Title:        r.Title,
		Description:  r.Description,
		PointsReward: r.PointsReward,
		CO2SavingKg:  r.CO2SavingKg,
		DurationDays: r.DurationDays,
		ImageURL:     r.ImageURL,
		Category:     r.Category,
	}
}

// List godoc
// @Summary List challenges, newest first
// @Tags challenges
// @Produce json
// @Success 200 {array} model.Challenge
// @Router /challenges [get]
func (h *ChallengeHandler) List(c echo.Context) error {
	challenges, err := h.challengeService.List(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, challenges)
}

// Get godoc
// @Summary Get a challenge by id
// @Tags challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {object} model.Challenge
// @Failure 404 {object} errors.ErrorResponse
// @Router /challenges/{id} [get]
func (h *ChallengeHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest("invalid id")
	}

	challenge, err := h.challengeService.Get(c.Request().Context(), uint(id))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, challenge)
}

// Create godoc
// @Summary Create a challenge (admin only)
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChallengeRequest true "Challenge data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /challenges [post]
func (h *ChallengeHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req ChallengeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.Title == "" || req.PointsReward == 0 || req.DurationDays == 0 {
		return badRequest("Title, points_reward, and duration_days are required")
	}

	challenge, err := h.challengeService.Create(c.Request().Context(), claims.Role, req.toInput())
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":     "Challenge created",
		"challengeId": challenge.ID,
	})
}

// Update godoc
// @Summary Update a challenge (admin only)
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Challenge ID"
// @Param request body ChallengeRequest true "Challenge data"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /challenges/{id} [put]
func (h *ChallengeHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest("invalid id")
	}

	var req ChallengeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	if err := h.challengeService.Update(c.Request().Context(), claims.Role, uint(id), req.toInput()); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Challenge updated"})
}

// Delete godoc
// @Summary Delete a challenge (admin only)
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param id path int true "Challenge ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /challenges/{id} [delete]
func (h *ChallengeHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return badRequest("invalid id")
	}

	if err := h.challengeService.Delete(c.Request().Context(), claims.Role, uint(id)); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Challenge deleted"})
}

// MyEnrollments godoc
// @Summary List the caller's challenge enrollments
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.EnrollmentDetail
// @Failure 401 {object} errors.ErrorResponse
// @Router /challenges/user/me [get]
func (h *ChallengeHandler) MyEnrollments(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	details, err := h.challengeService.MyEnrollments(c.Request().Context(), claims.UserID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, details)
}

// Join godoc
// @Summary Join a challenge
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param challengeId path int true "Challenge ID"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /challenges/join/{challengeId} [post]
func (h *ChallengeHandler) Join(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	challengeID, err := strconv.Atoi(c.Param("challengeId"))
	if err != nil {
		return badRequest("invalid challenge id")
	}

	enrollment, err := h.challengeService.Join(c.Request().Context(), claims.UserID, uint(challengeID))
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":         "Joined challenge",
		"userChallengeId": enrollment.ID,
	})
}

// UpdateProgress godoc
// @Summary Update progress on an enrollment
// @Tags challenges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userChallengeId path int true "Enrollment ID"
// @Param request body ProgressRequest true "Progress 0-100"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /challenges/progress/{userChallengeId} [put]
func (h *ChallengeHandler) UpdateProgress(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	enrollmentID, err := strconv.Atoi(c.Param("userChallengeId"))
	if err != nil {
		return badRequest("invalid user challenge id")
	}

	var req ProgressRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	if err := h.challengeService.UpdateProgress(c.Request().Context(), claims.UserID, claims.Role, uint(enrollmentID), req.Progress); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Progress updated"})
}

// Complete godoc
// @Summary Mark an enrollment completed
// @Tags challenges
// @Produce json
// @Security BearerAuth
// @Param userChallengeId path int true "Enrollment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /challenges/complete/{userChallengeId} [put]
func (h *ChallengeHandler) Complete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	enrollmentID, err := strconv.Atoi(c.Param("userChallengeId"))
	if err != nil {
		return badRequest("invalid user challenge id")
	}

	if err := h.challengeService.Complete(c.Request().Context(), claims.UserID, claims.Role, uint(enrollmentID)); err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Challenge completed"})
}
