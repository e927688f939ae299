package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/medetk/castlink/backend/internal/models"
	"github.com/medetk/castlink/backend/internal/repositories"
	"github.com/medetk/castlink/backend/internal/storage"
	"github.com/medetk/castlink/backend/pkg/apperrors"
	"gorm.io/gorm"
)

// MediaHandler handles media uploads and listings. Uploads are two-phase:
// the binary goes to object storage first, the metadata row second. A row
// is never created for a binary that failed to upload; a binary whose row
// insert fails gets a best-effort compensating delete.
type MediaHandler struct {
	mediaRepository    repositories.MediaRepository
	activityRepository repositories.ActivityRepository
	store              storage.Storage
}

// NewMediaHandler creates a new MediaHandler. activityRepo may be nil.
func NewMediaHandler(mediaRepo repositories.MediaRepository, activityRepo repositories.ActivityRepository, store storage.Storage) *MediaHandler {
	return &MediaHandler{
		mediaRepository:    mediaRepo,
		activityRepository: activityRepo,
		store:              store,
	}
}

// RegisterMediaRoutes registers media-related routes
func (h *MediaHandler) RegisterMediaRoutes(g *echo.Group) {
	g.GET("/profiles/:id/media", h.GetMedia)
	g.POST("/media", h.UploadMedia)
	g.DELETE("/media/:id", h.DeleteMedia)
}

// GetMedia returns all media rows owned by a profile
func (h *MediaHandler) GetMedia(c echo.Context) error {
	profileID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	assets, err := h.mediaRepository.GetMedia(profileID)
	if err != nil {
		return apperrors.Database(err)
	}
	return respond(c, http.StatusOK, assets)
}

// UploadMedia stores the multipart "file" field in object storage under
// {profileID}/{random}.{ext} and creates the metadata row pointing at its
// public URL.
func (h *MediaHandler) UploadMedia(c echo.Context) error {
	profileID := profileIDFromContext(c)
	if profileID == 0 {
		return apperrors.Unauthorized("not authenticated")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.Validation("multipart field 'file' is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return apperrors.Validation("unreadable upload")
	}
	defer src.Close()

	ctx := c.Request().Context()
	contentType := fileHeader.Header.Get("Content-Type")
	objectPath := fmt.Sprintf("%d/%s%s", profileID, uuid.NewString(), filepath.Ext(fileHeader.Filename))

	// Phase 1: binary upload. On failure nothing else happens, so no
	// orphaned row can exist.
	if err := h.store.Save(ctx, objectPath, src, contentType); err != nil {
		return apperrors.Storage(err)
	}

	caption := c.FormValue("caption")
	if caption == "" {
		caption = fileHeader.Filename
	}

	asset := &models.MediaAsset{
		ProfileID:  profileID,
		URL:        h.store.URL(objectPath),
		ObjectPath: objectPath,
		Type:       models.MediaTypeFromMIME(contentType),
		Caption:    caption,
	}

	// Phase 2: metadata row. If this fails the uploaded binary is deleted
	// again; when even that fails the orphan is left for the external sweep.
	if err := h.mediaRepository.CreateMedia(asset); err != nil {
		if delErr := h.store.Delete(ctx, objectPath); delErr != nil {
			c.Logger().Warnf("orphaned object %s: %v", objectPath, delErr)
		}
		return apperrors.Database(err)
	}

	h.recordUpload(c, profileID, asset.ID)
	return respond(c, http.StatusCreated, asset)
}

// DeleteMedia removes a media row and its stored binary
func (h *MediaHandler) DeleteMedia(c echo.Context) error {
	profileID := profileIDFromContext(c)
	if profileID == 0 {
		return apperrors.Unauthorized("not authenticated")
	}

	mediaID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	asset, err := h.mediaRepository.GetMediaByID(mediaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("media asset")
		}
		return apperrors.Database(err)
	}
	if asset.ProfileID != profileID {
		return apperrors.New(apperrors.CodeForbidden, "media asset belongs to another profile", http.StatusForbidden)
	}

	if err := h.mediaRepository.DeleteMedia(mediaID); err != nil {
		return apperrors.Database(err)
	}
	if err := h.store.Delete(c.Request().Context(), asset.ObjectPath); err != nil {
		c.Logger().Warnf("orphaned object %s: %v", asset.ObjectPath, err)
	}
	return respond(c, http.StatusOK, nil)
}

// recordUpload appends an upload event to the activity stream, best-effort.
func (h *MediaHandler) recordUpload(c echo.Context, profileID, assetID uint) {
	if h.activityRepository == nil {
		return
	}
	event := &models.ActivityEvent{
		ProfileID: profileID,
		Verb:      models.ActivityUpload,
		TargetID:  assetID,
	}
	if err := h.activityRepository.RecordActivity(c.Request().Context(), event); err != nil {
		c.Logger().Warnf("record upload activity: %v", err)
	}
}
