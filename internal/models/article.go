package models

import "time"

// Article is a peer-written study article. Upvotes and Comments are plain
// counters; the votes themselves are not tracked per user.
type Article struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"not null;default:'Anonymous'" json:"author"`
	Upvotes   int       `gorm:"not null;default:0" json:"upvotes"`
	Comments  int       `gorm:"not null;default:0" json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
