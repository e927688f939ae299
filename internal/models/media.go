package models

import (
	"strings"
	"time"
)

// Media types stored in the media_assets table.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// MediaAsset is the metadata row for one uploaded binary. The binary itself
// lives in object storage under ObjectPath; URL is the derived public URL.
type MediaAsset struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProfileID  uint      `json:"profile_id" gorm:"index"`
	URL        string    `json:"url"`
	ObjectPath string    `json:"-" gorm:"uniqueIndex"` // storage key, one per upload
	Type       string    `json:"type"`
	Caption    string    `json:"caption"`
	CreatedAt  time.Time `json:"created_at"`
}

// MediaTypeFromMIME maps a MIME type to the stored media type. Anything
// outside the image/ family is treated as video; the UI renders exactly
// these two categories.
func MediaTypeFromMIME(contentType string) string {
	if strings.HasPrefix(contentType, "image/") {
		return MediaTypeImage
	}
	return MediaTypeVideo
}
