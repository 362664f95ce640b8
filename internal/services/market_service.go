package services

import (
	"errors"
	"fmt"

	"github.com/vidyapath/planner-api/internal/models"
	"github.com/vidyapath/planner-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound            = errors.New("item not found")
	ErrNotItemSeller           = errors.New("not authorized")
	ErrItemTitleRequired       = errors.New("title is required")
	ErrItemDescriptionRequired = errors.New("description is required")
	ErrItemPriceInvalid        = errors.New("price must be greater than zero")
	ErrItemContactRequired     = errors.New("contact info is required")
	ErrInvalidCategory         = errors.New("category must be one of Textbooks, Electronics, Lab Coats, Stationery, Notes, Other")
	ErrInvalidCondition        = errors.New("condition must be one of New, Like New, Used, Rough")
)

// MarketService handles marketplace listing business logic. It needs the
// user repository to denormalize the seller's name onto new listings.
type MarketService struct {
	itemRepo repository.MarketItemRepository
	userRepo repository.UserRepository
}

// NewMarketService creates a new MarketService
func NewMarketService(itemRepo repository.MarketItemRepository, userRepo repository.UserRepository) *MarketService {
	return &MarketService{
		itemRepo: itemRepo,
		userRepo: userRepo,
	}
}

// CreateItemInput represents input for listing an item
type CreateItemInput struct {
	Title         string
	Description   string
	Price         float64
	OriginalPrice float64
	Category      models.MarketCategory
	Condition     models.MarketCondition
	ContactInfo   string
}

// CreateItem validates the listing and stores it under the seller's name.
func (s *MarketService) CreateItem(sellerID uint64, input CreateItemInput) (*models.MarketItem, error) {
	if input.Title == "" {
		return nil, ErrItemTitleRequired
	}
	if input.Description == "" {
		return nil, ErrItemDescriptionRequired
	}
	if input.Price <= 0 {
		return nil, ErrItemPriceInvalid
	}
	if input.ContactInfo == "" {
		return nil, ErrItemContactRequired
	}
	if !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if !input.Condition.Valid() {
		return nil, ErrInvalidCondition
	}

	seller, err := s.userRepo.FindByID(sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seller: %w", err)
	}

	item := &models.MarketItem{
		SellerID:      sellerID,
		SellerName:    seller.Name,
		Title:         input.Title,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Category:      input.Category,
		Condition:     input.Condition,
		ContactInfo:   input.ContactInfo,
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// ListItems returns unsold listings, newest first. "All" and the empty
// string both mean no category filter; any other unknown category is
// rejected rather than silently matching nothing.
func (s *MarketService) ListItems(category string) ([]models.MarketItem, error) {
	filter := models.MarketCategory(category)
	if category == "" || category == "All" {
		filter = ""
	} else if !filter.Valid() {
		return nil, ErrInvalidCategory
	}

	items, err := s.itemRepo.ListUnsold(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// DeleteItem removes a listing after checking the caller is its seller. A
// missing listing and a foreign-owned listing are distinct errors so the
// transport layer can answer 404 and 401 respectively.
func (s *MarketService) DeleteItem(itemID, userID uint64) error {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to find item: %w", err)
	}

	if item.SellerID != userID {
		return ErrNotItemSeller
	}

	if err := s.itemRepo.Delete(item.ID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
