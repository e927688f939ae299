package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/medetk/castlink/backend/internal/models"
	"github.com/medetk/castlink/backend/pkg/apperrors"
)

// claimsFromContext returns the JWT claims stored by the auth middleware,
// or nil on unauthenticated routes.
func claimsFromContext(c echo.Context) *models.JwtCustomClaims {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// profileIDFromContext returns the authenticated profile id, 0 if absent.
func profileIDFromContext(c echo.Context) uint {
	if claims := claimsFromContext(c); claims != nil {
		return claims.ProfileID
	}
	return 0
}

// respond writes the uniform success envelope. Failures never reach here;
// they travel as errors into apperrors.HTTPErrorHandler.
func respond(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, echo.Map{"data": data})
}

// bindAndValidate decodes the request body and runs the registered
// validator over it.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.Validation("invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		msg := "validation failed"
		if httpErr, ok := err.(*echo.HTTPError); ok {
			if s, ok := httpErr.Message.(string); ok {
				msg = s
			}
		}
		return apperrors.New(apperrors.CodeValidationFailed, msg, http.StatusBadRequest)
	}
	return nil
}
