package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/vidyapath/planner-api/internal/errors"
	"github.com/vidyapath/planner-api/internal/middleware"
	"github.com/vidyapath/planner-api/internal/models"
	"github.com/vidyapath/planner-api/internal/services"
)

// PlannerHandler serves the task CRUD surface, the matrix projection, and the
// frozen stats/habit endpoints.
type PlannerHandler struct {
	plannerService *services.PlannerService
	statsService   *services.StatsService
}

// NewPlannerHandler creates a new PlannerHandler
func NewPlannerHandler(plannerService *services.PlannerService, statsService *services.StatsService) *PlannerHandler {
	return &PlannerHandler{
		plannerService: plannerService,
		statsService:   statsService,
	}
}

// ListTasks returns all of the caller's tasks, due date ascending.
func (h *PlannerHandler) ListTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	tasks, err := h.plannerService.ListTasks(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetMatrix returns the four-quadrant projection plus the completed list.
func (h *PlannerHandler) GetMatrix(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	tasks, err := h.plannerService.ListTasks(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, services.Partition(tasks))
}

// CreateTask creates a new pending task for the caller.
func (h *PlannerHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title    string `json:"title"`
		Subject  string `json:"subject"`
		DueDate  string `json:"dueDate"`
		Time     string `json:"time"`
		Priority string `json:"priority"`
		Notes    string `json:"notes"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	var dueDate time.Time
	if req.DueDate != "" {
		parsed, err := parseDate(req.DueDate)
		if err != nil {
			apierrors.BadRequest(c, "Invalid due date")
			return
		}
		dueDate = parsed
	}

	task, err := h.plannerService.CreateTask(services.CreateTaskInput{
		OwnerID:  userID,
		Title:    req.Title,
		Subject:  req.Subject,
		DueDate:  dueDate,
		Time:     req.Time,
		Priority: models.Priority(req.Priority),
		Notes:    req.Notes,
	})
	if err != nil {
		respondPlannerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask applies a partial update to a task already loaded and
// ownership-checked by RequireTaskOwner.
func (h *PlannerHandler) UpdateTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	// A field that is present but carries the wrong JSON type is a client
	// error, not a field to skip.
	var input services.UpdateTaskInput

	if priority, ok := rawReq["priority"]; ok {
		priorityStr, ok := priority.(string)
		if !ok {
			apierrors.BadRequest(c, "Invalid priority")
			return
		}
		p := models.Priority(priorityStr)
		input.Priority = &p
	}
	if isCompleted, ok := rawReq["isCompleted"]; ok {
		completed, ok := isCompleted.(bool)
		if !ok {
			apierrors.BadRequest(c, "Invalid isCompleted")
			return
		}
		input.IsCompleted = &completed
	}
	if notes, ok := rawReq["notes"]; ok {
		notesStr, ok := notes.(string)
		if !ok {
			apierrors.BadRequest(c, "Invalid notes")
			return
		}
		input.Notes = &notesStr
	}
	if timeVal, ok := rawReq["time"]; ok {
		timeStr, ok := timeVal.(string)
		if !ok {
			apierrors.BadRequest(c, "Invalid time")
			return
		}
		input.Time = &timeStr
	}
	if dueDate, ok := rawReq["dueDate"]; ok {
		dueDateStr, ok := dueDate.(string)
		if !ok {
			apierrors.BadRequest(c, "Invalid due date")
			return
		}
		if dueDateStr != "" {
			parsed, err := parseDate(dueDateStr)
			if err != nil {
				apierrors.BadRequest(c, "Invalid due date")
				return
			}
			input.DueDate = &parsed
		}
	}

	updated, err := h.plannerService.UpdateTask(&task, input)
	if err != nil {
		respondPlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteTask permanently removes a task loaded by RequireTaskOwner.
func (h *PlannerHandler) DeleteTask(c *gin.Context) {
	task, ok := middleware.GetTask(c)
	if !ok {
		apierrors.InternalError(c, "Task not found in context")
		return
	}

	if err := h.plannerService.DeleteTask(task.ID); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Task removed"})
}

// DeleteAllTasks clears the caller's planner in one transaction.
func (h *PlannerHandler) DeleteAllTasks(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	deleted, err := h.plannerService.DeleteAllTasks(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// GetStats returns the placeholder gamification payload.
func (h *PlannerHandler) GetStats(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, h.statsService.GetUserStats(userID))
}

// ToggleHabit acknowledges the request without changing anything; habit
// tracking is disabled while the streak model is frozen.
func (h *PlannerHandler) ToggleHabit(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Habit tracking disabled"})
}

func respondPlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrSubjectRequired),
		errors.Is(err, services.ErrDueDateRequired),
		errors.Is(err, services.ErrInvalidPriority):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}

// parseDate accepts both full RFC3339 timestamps and bare calendar dates,
// which is what the date picker sends.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
