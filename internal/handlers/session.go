package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/vidyapath/planner-api/internal/errors"
	"github.com/vidyapath/planner-api/internal/middleware"
	"github.com/vidyapath/planner-api/internal/services"
)

// SessionHandler serves the focus-timer endpoints.
type SessionHandler struct {
	statsService *services.StatsService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(statsService *services.StatsService) *SessionHandler {
	return &SessionHandler{
		statsService: statsService,
	}
}

// SaveSession records a completed focus-timer run.
func (h *SessionHandler) SaveSession(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SaveSessionRequest struct {
		Duration int `json:"duration"`
	}

	var req SaveSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.statsService.SaveSession(userID, req.Duration)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDuration) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// ListSessions returns the caller's recorded sessions, most recent first.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	sessions, err := h.statsService.ListSessions(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, sessions)
}
