package repository

import (
	"github.com/vidyapath/planner-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID. Ownership is checked by the caller layer.
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByOwner returns the full task list for a user, due date ascending.
// The result set is unbounded; a student's planner stays small.
func (r *GormTaskRepository) ListByOwner(ownerID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.
		Where("owner_id = ?", ownerID).
		Order("due_date ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update persists all fields of a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete permanently removes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}

// DeleteAllByOwner removes every task owned by a user inside one transaction,
// so a dashboard reset either fully applies or fully rolls back.
func (r *GormTaskRepository) DeleteAllByOwner(ownerID uint64) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("owner_id = ?", ownerID).Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
