package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/vidyapath/planner-api/internal/errors"
	"github.com/vidyapath/planner-api/internal/middleware"
	"github.com/vidyapath/planner-api/internal/models"
	"github.com/vidyapath/planner-api/internal/services"
)

// MarketHandler serves the peer marketplace. Browsing is public; listing and
// removing require auth.
type MarketHandler struct {
	marketService *services.MarketService
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(marketService *services.MarketService) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
	}
}

// ListItems returns unsold listings, newest first, optionally filtered by
// the category query parameter ("All" disables the filter).
func (h *MarketHandler) ListItems(c *gin.Context) {
	items, err := h.marketService.ListItems(c.Query("category"))
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// CreateItem lists a new item under the caller's name.
func (h *MarketHandler) CreateItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateItemRequest struct {
		Title         string  `json:"title"`
		Description   string  `json:"description"`
		Price         float64 `json:"price"`
		OriginalPrice float64 `json:"originalPrice"`
		Category      string  `json:"category"`
		Condition     string  `json:"condition"`
		ContactInfo   string  `json:"contactInfo"`
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.marketService.CreateItem(userID, services.CreateItemInput{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      models.MarketCategory(req.Category),
		Condition:     models.MarketCondition(req.Condition),
		ContactInfo:   req.ContactInfo,
	})
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// DeleteItem removes a listing the caller owns.
func (h *MarketHandler) DeleteItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.marketService.DeleteItem(itemID, userID); err != nil {
		respondMarketError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

func respondMarketError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrItemTitleRequired),
		errors.Is(err, services.ErrItemDescriptionRequired),
		errors.Is(err, services.ErrItemPriceInvalid),
		errors.Is(err, services.ErrItemContactRequired),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidCondition):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrItemNotFound):
		apierrors.NotFound(c, "Item not found")
	case errors.Is(err, services.ErrNotItemSeller):
		apierrors.Unauthorized(c, "Not authorized")
	default:
		apierrors.InternalError(c, "")
	}
}
