package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/vidyapath/planner-api/internal/models"
	"github.com/vidyapath/planner-api/internal/repository"
)

var ErrInvalidDuration = errors.New("duration must be a positive number of minutes")

// StatsService serves the frozen gamification surface and records focus-timer
// sessions. Streak/XP accrual was removed server-side; the stats payload is a
// fixed placeholder until a real accrual model exists.
type StatsService struct {
	sessionRepo repository.StudySessionRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(sessionRepo repository.StudySessionRepository) *StatsService {
	return &StatsService{
		sessionRepo: sessionRepo,
	}
}

// StreakStats mirrors the streak block of the stats payload.
type StreakStats struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
	Freezes int `json:"freezes"`
}

// GamificationStats is the top-level gamification block.
type GamificationStats struct {
	XP     int         `json:"xp"`
	Streak StreakStats `json:"streak"`
}

// UserStats is the full stats payload.
type UserStats struct {
	Gamification GamificationStats `json:"gamification"`
	Habits       []models.Habit    `json:"habits"`
	ActivityLog  map[string]int    `json:"activityLog"`
}

// GetUserStats returns the zeroed placeholder stats. The user's stored
// gamification columns are deliberately ignored while the feature is frozen.
func (s *StatsService) GetUserStats(userID uint64) UserStats {
	return UserStats{
		Gamification: GamificationStats{},
		Habits:       []models.Habit{},
		ActivityLog:  map[string]int{},
	}
}

// SaveSession records a completed focus-timer run.
func (s *StatsService) SaveSession(userID uint64, duration int) (*models.StudySession, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	session := &models.StudySession{
		UserID:      userID,
		Duration:    duration,
		CompletedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// ListSessions returns the user's recorded sessions, most recent first.
func (s *StatsService) ListSessions(userID uint64) ([]models.StudySession, error) {
	sessions, err := s.sessionRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}
