package models

import "time"

// StudySession records one completed focus-timer run.
type StudySession struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	Duration    int       `gorm:"not null" json:"duration"` // minutes
	CompletedAt time.Time `json:"completed_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
