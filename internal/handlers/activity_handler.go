package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/medetk/castlink/backend/internal/repositories"
	"github.com/medetk/castlink/backend/pkg/apperrors"
)

const defaultActivityLimit = 20

// ActivityHandler serves the recent-activity stream
type ActivityHandler struct {
	activityRepository repositories.ActivityRepository
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityRepo repositories.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{activityRepository: activityRepo}
}

// RegisterActivityRoutes registers activity-related routes
func (h *ActivityHandler) RegisterActivityRoutes(g *echo.Group) {
	g.GET("/profiles/:id/activity", h.GetRecentActivity)
}

// GetRecentActivity returns a profile's latest activity events, newest first
func (h *ActivityHandler) GetRecentActivity(c echo.Context) error {
	profileID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	limit := int64(defaultActivityLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 || parsed > 100 {
			return apperrors.Validation("limit must be between 1 and 100")
		}
		limit = parsed
	}

	events, err := h.activityRepository.GetRecentActivity(c.Request().Context(), profileID, limit)
	if err != nil {
		return apperrors.Database(err)
	}
	return respond(c, http.StatusOK, events)
}
