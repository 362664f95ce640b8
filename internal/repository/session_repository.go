package repository

import (
	"github.com/vidyapath/planner-api/internal/models"
	"gorm.io/gorm"
)

// GormStudySessionRepository is a GORM implementation of StudySessionRepository
type GormStudySessionRepository struct {
	db *gorm.DB
}

// NewStudySessionRepository creates a new StudySessionRepository
func NewStudySessionRepository(db *gorm.DB) StudySessionRepository {
	return &GormStudySessionRepository{db: db}
}

// Create records a completed study session
func (r *GormStudySessionRepository) Create(session *models.StudySession) error {
	return r.db.Create(session).Error
}

// ListByUser returns a user's sessions, most recent first
func (r *GormStudySessionRepository) ListByUser(userID uint64) ([]models.StudySession, error) {
	var sessions []models.StudySession
	if err := r.db.
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}
