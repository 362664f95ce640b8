package repository

import (
	"github.com/vidyapath/planner-api/internal/models"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID regardless of owner
	FindByID(id uint64) (*models.Task, error)

	// ListByOwner returns every task owned by a user, due date ascending
	ListByOwner(ownerID uint64) ([]models.Task, error)

	// Update persists all fields of a task
	Update(task *models.Task) error

	// Delete permanently removes a task
	Delete(id uint64) error

	// DeleteAllByOwner removes every task owned by a user in one transaction
	// and reports how many rows were removed
	DeleteAllByOwner(ownerID uint64) (int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// MarketItemRepository defines the interface for marketplace listing data access
type MarketItemRepository interface {
	// Create stores a new listing
	Create(item *models.MarketItem) error

	// FindByID finds a listing by ID regardless of seller
	FindByID(id uint64) (*models.MarketItem, error)

	// ListUnsold returns unsold listings, newest first, optionally limited
	// to one category
	ListUnsold(category models.MarketCategory) ([]models.MarketItem, error)

	// Delete permanently removes a listing
	Delete(id uint64) error
}

// ArticleRepository defines the interface for peer article data access
type ArticleRepository interface {
	// Create stores a new article
	Create(article *models.Article) error

	// ListAll returns every article, newest first
	ListAll() ([]models.Article, error)
}

// StudySessionRepository defines the interface for focus-timer session data access
type StudySessionRepository interface {
	// Create records a completed study session
	Create(session *models.StudySession) error

	// ListByUser returns a user's sessions, most recent first
	ListByUser(userID uint64) ([]models.StudySession, error)
}
