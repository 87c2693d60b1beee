package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ecohub/internal/auth"
	apperrors "ecohub/internal/errors"
)

// currentClaims returns the session claims stored by the JWT middleware.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok || claims == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Message: "invalid token",
		})
	}
	return claims, nil
}

// mapError converts a service error into an echo.HTTPError with the
// standard response body.
func mapError(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// badRequest answers a validation failure in the standard body shape.
func badRequest(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{Message: message})
}
