package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/vidyapath/planner-api/internal/models"
	"github.com/vidyapath/planner-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrNotTaskOwner    = errors.New("not authorized")
	ErrTitleRequired   = errors.New("title is required")
	ErrSubjectRequired = errors.New("subject is required")
	ErrDueDateRequired = errors.New("due date is required")
	ErrInvalidPriority = errors.New("priority must be one of do_first, schedule, delegate, delete")
)

// PlannerService handles task business logic
type PlannerService struct {
	taskRepo repository.TaskRepository
}

// NewPlannerService creates a new PlannerService
func NewPlannerService(taskRepo repository.TaskRepository) *PlannerService {
	return &PlannerService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	OwnerID  uint64
	Title    string
	Subject  string
	DueDate  time.Time
	Time     string
	Priority models.Priority
	Notes    string
}

// UpdateTaskInput represents a partial update. Nil fields are left untouched.
type UpdateTaskInput struct {
	Priority    *models.Priority
	IsCompleted *bool
	Notes       *string
	Time        *string
	DueDate     *time.Time
}

// CreateTask validates required fields and stores a new pending task.
func (s *PlannerService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.Subject == "" {
		return nil, ErrSubjectRequired
	}
	if input.DueDate.IsZero() {
		return nil, ErrDueDateRequired
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityDoFirst
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	task := &models.Task{
		OwnerID:  input.OwnerID,
		Title:    input.Title,
		Subject:  input.Subject,
		DueDate:  input.DueDate,
		Time:     input.Time,
		Priority: priority,
		Notes:    input.Notes,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns every task owned by the user, due date ascending.
func (s *PlannerService) ListTasks(ownerID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask fetches a task and checks that the caller owns it. A missing task
// and a foreign-owned task are distinct errors so the transport layer can
// answer 404 and 401 respectively.
func (s *PlannerService) GetTask(taskID, ownerID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if task.OwnerID != ownerID {
		return nil, ErrNotTaskOwner
	}
	return task, nil
}

// UpdateTask applies the fields present in input to the task and keeps the
// completion pair in sync: setting isCompleted true stamps completedAt with
// the current time (re-completion refreshes it), setting it false clears it.
func (s *PlannerService) UpdateTask(task *models.Task, input UpdateTaskInput) (*models.Task, error) {
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		task.Priority = *input.Priority
	}
	if input.Notes != nil {
		task.Notes = *input.Notes
	}
	if input.Time != nil {
		task.Time = *input.Time
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.IsCompleted != nil {
		task.IsCompleted = *input.IsCompleted
		if task.IsCompleted {
			now := time.Now()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask permanently removes a task.
func (s *PlannerService) DeleteTask(taskID uint64) error {
	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// DeleteAllTasks removes every task the user owns in a single transaction and
// returns the number of tasks removed.
func (s *PlannerService) DeleteAllTasks(ownerID uint64) (int64, error) {
	deleted, err := s.taskRepo.DeleteAllByOwner(ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete tasks: %w", err)
	}
	return deleted, nil
}

// Matrix is the four-quadrant board projection. Each bucket holds only
// pending tasks; completed tasks are listed separately and never appear in a
// quadrant, whatever their priority says.
type Matrix struct {
	DoFirst   []models.Task `json:"do_first"`
	Schedule  []models.Task `json:"schedule"`
	Delegate  []models.Task `json:"delegate"`
	Delete    []models.Task `json:"delete"`
	Completed []models.Task `json:"completed"`
}

// Partition projects a task list into the matrix. It is a pure function of
// its input: every task lands in exactly one bucket and none are dropped.
func Partition(tasks []models.Task) Matrix {
	m := Matrix{
		DoFirst:   []models.Task{},
		Schedule:  []models.Task{},
		Delegate:  []models.Task{},
		Delete:    []models.Task{},
		Completed: []models.Task{},
	}

	for _, t := range tasks {
		if t.IsCompleted {
			m.Completed = append(m.Completed, t)
			continue
		}
		switch t.Priority {
		case models.PrioritySchedule:
			m.Schedule = append(m.Schedule, t)
		case models.PriorityDelegate:
			m.Delegate = append(m.Delegate, t)
		case models.PriorityDelete:
			m.Delete = append(m.Delete, t)
		default:
			// Persistence guarantees the four-value enum; anything else
			// predates it and reads as do_first.
			m.DoFirst = append(m.DoFirst, t)
		}
	}

	return m
}
