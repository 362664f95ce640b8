package repository

import (
	"github.com/vidyapath/planner-api/internal/models"
	"gorm.io/gorm"
)

// GormMarketItemRepository is a GORM implementation of MarketItemRepository
type GormMarketItemRepository struct {
	db *gorm.DB
}

// NewMarketItemRepository creates a new MarketItemRepository
func NewMarketItemRepository(db *gorm.DB) MarketItemRepository {
	return &GormMarketItemRepository{db: db}
}

// Create stores a new listing
func (r *GormMarketItemRepository) Create(item *models.MarketItem) error {
	return r.db.Create(item).Error
}

// FindByID finds a listing by ID regardless of seller
func (r *GormMarketItemRepository) FindByID(id uint64) (*models.MarketItem, error) {
	var item models.MarketItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListUnsold returns unsold listings, newest first. An empty category means
// no category filter.
func (r *GormMarketItemRepository) ListUnsold(category models.MarketCategory) ([]models.MarketItem, error) {
	query := r.db.Where("is_sold = ?", false)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var items []models.MarketItem
	if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Delete permanently removes a listing
func (r *GormMarketItemRepository) Delete(id uint64) error {
	return r.db.Delete(&models.MarketItem{}, id).Error
}
