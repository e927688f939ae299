package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/medetk/castlink/backend/internal/models"
	"github.com/medetk/castlink/backend/internal/repositories"
	"github.com/medetk/castlink/backend/pkg/apperrors"
)

// SessionAuthMiddleware checks for a valid JWT and verifies that the
// session row it references is still active. A revoked session rejects the
// token even before its expiry.
func SessionAuthMiddleware(jwtSecret string, sessions repositories.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return apperrors.Unauthorized("missing Authorization header")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return apperrors.Unauthorized("invalid Authorization header format")
			}
			tokenString := parts[1]

			claims := &models.JwtCustomClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, apperrors.New(apperrors.CodeInvalidToken, "unexpected signing method", http.StatusUnauthorized)
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return apperrors.New(apperrors.CodeInvalidToken, "invalid token", http.StatusUnauthorized)
			}

			session, err := sessions.GetSessionByID(claims.SessionID)
			if err != nil {
				return apperrors.New(apperrors.CodeInvalidToken, "unknown session", http.StatusUnauthorized)
			}
			if !session.Active(time.Now()) {
				return apperrors.New(apperrors.CodeInvalidToken, "session expired or revoked", http.StatusUnauthorized)
			}

			// Store user claims in context
			c.Set("user", claims)

			return next(c)
		}
	}
}
