package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/medetk/castlink/backend/internal/models"
	"github.com/medetk/castlink/backend/internal/repositories"
	"github.com/medetk/castlink/backend/pkg/apperrors"
	"gorm.io/gorm"
)

// ProfileHandler handles HTTP requests related to profiles
type ProfileHandler struct {
	profileRepository repositories.ProfileRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileRepo repositories.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profileRepository: profileRepo}
}

// RegisterProfileRoutes registers profile-related routes
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profiles/me", h.GetMyProfile)
	g.PUT("/profiles/me", h.UpdateProfile)
	g.GET("/profiles/:id", h.GetProfile)
	g.GET("/profiles/search", h.SearchProfiles)
}

// GetProfile retrieves one profile by id. A missing row is an error, never
// a default profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.profileRepository.GetProfileByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("profile")
		}
		return apperrors.Database(err)
	}
	return respond(c, http.StatusOK, profile)
}

// GetMyProfile retrieves the authenticated profile
func (h *ProfileHandler) GetMyProfile(c echo.Context) error {
	profileID := profileIDFromContext(c)
	if profileID == 0 {
		return apperrors.Unauthorized("not authenticated")
	}

	profile, err := h.profileRepository.GetProfileByID(profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("profile")
		}
		return apperrors.Database(err)
	}
	return respond(c, http.StatusOK, profile)
}

// UpdateProfile applies a partial patch to the authenticated profile. Only
// the fields present in the body are written; everything else stays as-is.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	profileID := profileIDFromContext(c)
	if profileID == 0 {
		return apperrors.Unauthorized("not authenticated")
	}

	var req models.UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	profile, err := h.profileRepository.UpdateProfile(profileID, req.Changes())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("profile")
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.AlreadyExists("profile with this email")
		}
		return apperrors.Database(err)
	}
	return respond(c, http.StatusOK, profile)
}

// SearchProfiles searches profiles by name or location, optionally filtered by role
func (h *ProfileHandler) SearchProfiles(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return apperrors.Validation("search query 'q' is required")
	}
	role := c.QueryParam("role")
	if role != "" && role != models.RoleActor && role != models.RoleDirector {
		return apperrors.Validation("role must be actor or director")
	}

	profiles, err := h.profileRepository.SearchProfiles(query, role)
	if err != nil {
		return apperrors.Database(err)
	}
	return respond(c, http.StatusOK, profiles)
}

// parseID parses a numeric path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperrors.Validation("invalid " + name)
	}
	return uint(id), nil
}
