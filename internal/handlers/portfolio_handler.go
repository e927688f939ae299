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

// PortfolioHandler handles HTTP requests for portfolio entries
type PortfolioHandler struct {
	portfolioRepository repositories.PortfolioRepository
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioRepo repositories.PortfolioRepository) *PortfolioHandler {
	return &PortfolioHandler{portfolioRepository: portfolioRepo}
}

// RegisterPortfolioRoutes registers portfolio-related routes
func (h *PortfolioHandler) RegisterPortfolioRoutes(g *echo.Group) {
	g.GET("/profiles/:id/portfolio", h.GetPortfolio)
	g.POST("/portfolio", h.AddPortfolioItem)
	g.DELETE("/portfolio/:id", h.DeletePortfolioItem)
}

// GetPortfolio returns a profile's portfolio in insertion order
func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	profileID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.portfolioRepository.GetPortfolio(profileID)
	if err != nil {
		return apperrors.Database(err)
	}
	return respond(c, http.StatusOK, items)
}

// AddPortfolioItem inserts one portfolio row owned by the authenticated profile
func (h *PortfolioHandler) AddPortfolioItem(c echo.Context) error {
	profileID := profileIDFromContext(c)
	if profileID == 0 {
		return apperrors.Unauthorized("not authenticated")
	}

	var req models.AddPortfolioItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	item := &models.PortfolioItem{
		ProfileID:    profileID,
		Title:        req.Title,
		MediaType:    req.MediaType,
		ThumbnailURL: req.ThumbnailURL,
		Year:         req.Year,
	}
	if err := h.portfolioRepository.AddItem(item); err != nil {
		return apperrors.Database(err)
	}
	return respond(c, http.StatusCreated, item)
}

// DeletePortfolioItem removes a portfolio row owned by the authenticated profile
func (h *PortfolioHandler) DeletePortfolioItem(c echo.Context) error {
	profileID := profileIDFromContext(c)
	if profileID == 0 {
		return apperrors.Unauthorized("not authenticated")
	}

	itemID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.portfolioRepository.GetItemByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("portfolio item")
		}
		return apperrors.Database(err)
	}
	if item.ProfileID != profileID {
		return apperrors.New(apperrors.CodeForbidden, "portfolio item belongs to another profile", http.StatusForbidden)
	}

	if err := h.portfolioRepository.DeleteItem(itemID); err != nil {
		return apperrors.Database(err)
	}
	return respond(c, http.StatusOK, nil)
}
