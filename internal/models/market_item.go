package models

import (
	"time"
)

// MarketCategory classifies a listing for the category filter.
type MarketCategory string

const (
	CategoryTextbooks   MarketCategory = "Textbooks"
	CategoryElectronics MarketCategory = "Electronics"
	CategoryLabCoats    MarketCategory = "Lab Coats"
	CategoryStationery  MarketCategory = "Stationery"
	CategoryNotes       MarketCategory = "Notes"
	CategoryOther       MarketCategory = "Other"
)

// Valid reports whether c is a known listing category.
func (c MarketCategory) Valid() bool {
	switch c {
	case CategoryTextbooks, CategoryElectronics, CategoryLabCoats,
		CategoryStationery, CategoryNotes, CategoryOther:
		return true
	}
	return false
}

// MarketCondition grades how worn a listed item is.
type MarketCondition string

const (
	ConditionNew     MarketCondition = "New"
	ConditionLikeNew MarketCondition = "Like New"
	ConditionUsed    MarketCondition = "Used"
	ConditionRough   MarketCondition = "Rough"
)

// Valid reports whether c is a known condition grade.
func (c MarketCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionUsed, ConditionRough:
		return true
	}
	return false
}

// MarketItem is a second-hand listing in the peer marketplace. SellerName is
// denormalized from the seller at listing time so the public feed never joins
// against users.
type MarketItem struct {
	ID            uint64          `gorm:"primarykey" json:"id"`
	SellerID      uint64          `gorm:"not null;index" json:"seller_id"`
	SellerName    string          `gorm:"not null" json:"sellerName"`
	Title         string          `gorm:"not null" json:"title"`
	Description   string          `gorm:"type:text;not null" json:"description"`
	Price         float64         `gorm:"not null" json:"price"`
	OriginalPrice float64         `json:"originalPrice"`
	Category      MarketCategory  `gorm:"type:varchar(30);not null" json:"category"`
	Condition     MarketCondition `gorm:"type:varchar(20);not null" json:"condition"`
	ContactInfo   string          `gorm:"not null" json:"contactInfo"`
	IsSold        bool            `gorm:"not null;default:false" json:"isSold"`
	CreatedAt     time.Time       `json:"createdAt"`

	// Relations
	Seller User `gorm:"foreignKey:SellerID" json:"-"`
}
