package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/s4shantanu/socialconnect/internal/apperrors"
	"github.com/s4shantanu/socialconnect/internal/models"
	"github.com/labstack/echo/v4"
)

// currentClaims returns the verified JWT claims stored by the auth middleware.
func currentClaims(c echo.Context) *models.JwtCustomClaims {
	claims, _ := c.Get("user").(*models.JwtCustomClaims)
	return claims
}

// getUserIDFromContext returns the authenticated user id, or 0 when the
// request is unauthenticated.
func getUserIDFromContext(c echo.Context) uint {
	if claims := currentClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}

func isElevated(c echo.Context) bool {
	if claims := currentClaims(c); claims != nil {
		return claims.IsAdmin
	}
	return false
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// httpError maps the service error taxonomy onto HTTP statuses.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrSelfFollow):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrPermission):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
