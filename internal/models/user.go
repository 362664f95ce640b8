package models

import (
	"time"

	"gorm.io/gorm"
)

// Gamification carries the streak/XP counters. The accrual logic is frozen:
// the columns persist but nothing server-side increments them, and the stats
// endpoint reports fixed zeros.
type Gamification struct {
	XP               int        `gorm:"not null;default:0" json:"xp"`
	StreakCurrent    int        `gorm:"not null;default:0" json:"streak_current"`
	StreakLongest    int        `gorm:"not null;default:0" json:"streak_longest"`
	StreakLastActive *time.Time `json:"streak_last_active"`
	StreakFreezes    int        `gorm:"not null;default:0" json:"streak_freezes"`
}

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"type:varchar(50);not null" json:"name"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Gamification Gamification   `gorm:"embedded;embeddedPrefix:gamification_" json:"gamification"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Tasks    []Task         `gorm:"foreignKey:OwnerID" json:"-"`
	Habits   []Habit        `gorm:"foreignKey:UserID" json:"-"`
	Sessions []StudySession `gorm:"foreignKey:UserID" json:"-"`
}
