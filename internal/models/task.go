package models

import (
	"time"
)

// Priority is the Eisenhower-matrix quadrant a task is filed under.
type Priority string

const (
	PriorityDoFirst  Priority = "do_first"
	PrioritySchedule Priority = "schedule"
	PriorityDelegate Priority = "delegate"
	PriorityDelete   Priority = "delete"
)

// Valid reports whether p is one of the four quadrant values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityDoFirst, PrioritySchedule, PriorityDelegate, PriorityDelete:
		return true
	}
	return false
}

// Task deletion is permanent, so there is no soft-delete column here.
type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	OwnerID     uint64     `gorm:"not null;index" json:"owner_id"`
	Title       string     `gorm:"not null" json:"title"`
	Subject     string     `gorm:"type:varchar(255);not null" json:"subject"`
	DueDate     time.Time  `gorm:"not null" json:"dueDate"`
	Time        string     `gorm:"type:varchar(50)" json:"time"`
	Priority    Priority   `gorm:"type:varchar(20);not null;default:'do_first'" json:"priority"`
	Notes       string     `gorm:"type:text" json:"notes"`
	IsCompleted bool       `gorm:"not null;default:false" json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Relations
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}
