package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/medetk/castlink/backend/internal/models"
	"github.com/medetk/castlink/backend/internal/repositories"
	"github.com/medetk/castlink/backend/pkg/apperrors"
	"gorm.io/gorm"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository   repositories.FollowRepository
	profileRepository  repositories.ProfileRepository
	activityRepository repositories.ActivityRepository
}

// NewFollowHandler creates a new FollowHandler. activityRepo may be nil.
func NewFollowHandler(followRepo repositories.FollowRepository, profileRepo repositories.ProfileRepository, activityRepo repositories.ActivityRepository) *FollowHandler {
	return &FollowHandler{
		followRepository:   followRepo,
		profileRepository:  profileRepo,
		activityRepository: activityRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/profiles/:id/follow", h.FollowProfile)
	g.DELETE("/profiles/:id/follow", h.UnfollowProfile)
	g.GET("/profiles/:id/followers", h.GetFollowers)
	g.GET("/profiles/:id/following", h.GetFollowing)
}

// FollowProfile creates the directed edge current -> target. Self-follows
// are rejected; following the same profile twice leaves a single edge.
func (h *FollowHandler) FollowProfile(c echo.Context) error {
	currentID := profileIDFromContext(c)
	if currentID == 0 {
		return apperrors.Unauthorized("not authenticated")
	}

	targetID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if currentID == targetID {
		return apperrors.Validation("cannot follow yourself")
	}

	// Target must exist before an edge points at it.
	if _, err := h.profileRepository.GetProfileByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("profile")
		}
		return apperrors.Database(err)
	}

	isFollowing, err := h.followRepository.IsFollowing(currentID, targetID)
	if err != nil {
		return apperrors.Database(err)
	}
	if isFollowing {
		return apperrors.Conflict("already following this profile")
	}

	follow := &models.Follow{FollowerID: currentID, FollowingID: targetID}
	if err := h.followRepository.CreateFollow(follow); err != nil {
		// A concurrent follow of the same pair loses to the unique index;
		// the edge exists either way.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict("already following this profile")
		}
		return apperrors.Database(err)
	}

	h.profileRepository.IncrementFollowingCount(currentID)
	h.profileRepository.IncrementFollowersCount(targetID)
	h.recordFollowActivity(c, currentID, targetID, models.ActivityFollow)

	return respond(c, http.StatusOK, echo.Map{"following": true})
}

// UnfollowProfile deletes the edge current -> target. Unfollowing someone
// who was never followed succeeds silently.
func (h *FollowHandler) UnfollowProfile(c echo.Context) error {
	currentID := profileIDFromContext(c)
	if currentID == 0 {
		return apperrors.Unauthorized("not authenticated")
	}

	targetID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	wasFollowing, err := h.followRepository.IsFollowing(currentID, targetID)
	if err != nil {
		return apperrors.Database(err)
	}

	if err := h.followRepository.DeleteFollow(currentID, targetID); err != nil {
		return apperrors.Database(err)
	}

	if wasFollowing {
		h.profileRepository.DecrementFollowingCount(currentID)
		h.profileRepository.DecrementFollowersCount(targetID)
		h.recordFollowActivity(c, currentID, targetID, models.ActivityUnfollow)
	}

	return respond(c, http.StatusOK, echo.Map{"following": false})
}

// GetFollowers lists the profiles following :id, summary projection only
func (h *FollowHandler) GetFollowers(c echo.Context) error {
	profileID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	followers, err := h.followRepository.GetFollowers(profileID)
	if err != nil {
		return apperrors.Database(err)
	}
	return respond(c, http.StatusOK, followers)
}

// GetFollowing lists the profiles :id follows, summary projection only
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	profileID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	following, err := h.followRepository.GetFollowing(profileID)
	if err != nil {
		return apperrors.Database(err)
	}
	return respond(c, http.StatusOK, following)
}

func (h *FollowHandler) recordFollowActivity(c echo.Context, actorID, targetID uint, verb string) {
	if h.activityRepository == nil {
		return
	}
	event := &models.ActivityEvent{
		ProfileID: actorID,
		Verb:      verb,
		TargetID:  targetID,
	}
	if err := h.activityRepository.RecordActivity(c.Request().Context(), event); err != nil {
		c.Logger().Warnf("record follow activity: %v", err)
	}
}
