package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vidyapath/planner-api/internal/constants"
	apierrors "github.com/vidyapath/planner-api/internal/errors"
	"github.com/vidyapath/planner-api/internal/models"
	"github.com/vidyapath/planner-api/internal/services"
)

// RequireTaskOwner is the single ownership guard for mutating task routes.
// It loads the task named in the URL through the planner service,
// distinguishes "not found" (404) from "exists but owned by someone else"
// (401), and stashes the record in context so handlers never repeat the
// lookup.
func RequireTaskOwner(plannerService *services.PlannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskIDStr := c.Param("id")
		taskID, err := strconv.ParseUint(taskIDStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid task ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		task, err := plannerService.GetTask(taskID, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTaskNotFound):
				apierrors.NotFound(c, "Task not found")
			case errors.Is(err, services.ErrNotTaskOwner):
				apierrors.Unauthorized(c, "Not authorized")
			default:
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTask, *task)
		c.Next()
	}
}

// GetTask retrieves the task placed in context by RequireTaskOwner.
func GetTask(c *gin.Context) (models.Task, bool) {
	taskInterface, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		return models.Task{}, false
	}

	task, ok := taskInterface.(models.Task)
	return task, ok
}
