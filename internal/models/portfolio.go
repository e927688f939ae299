package models

import "time"

// PortfolioItem is one credit in a profile's portfolio.
type PortfolioItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProfileID    uint      `json:"profile_id" gorm:"index"`
	Title        string    `json:"title"`
	MediaType    string    `json:"media_type"` // "image" or "video"
	ThumbnailURL string    `json:"thumbnail_url"`
	Year         int       `json:"year"`
	CreatedAt    time.Time `json:"created_at"`
}

type AddPortfolioItemRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=160"`
	MediaType    string `json:"media_type" validate:"required,oneof=image video"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
	Year         int    `json:"year" validate:"omitempty,min=1888,max=2100"`
}
