package repository

import (
	"github.com/labweb/task-tracker-api/internal/models"
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

// Search retrieves tasks whose title or description contains term, or
// all tasks when term is empty
func (r *GormTaskRepository) Search(term string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	query := r.db
	if term != "" {
		pattern := "%" + term + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Update overwrites a task row
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes a task row only. Assignment rows referencing the task
// are left in place; user deletion is the only cascading path.
func (r *GormTaskRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Task{}).Error
}

// Assign inserts one assignment row. No uniqueness is enforced, so
// repeating a pair stores a second identical row.
func (r *GormTaskRepository) Assign(assignment *models.TaskAssignment) error {
	return r.db.Create(assignment).Error
}

// Unassign removes all assignment rows matching both ids
func (r *GormTaskRepository) Unassign(taskID, userID string) error {
	return r.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&models.TaskAssignment{}).Error
}

// ListWithAssignments retrieves all tasks with assignments and users
// preloaded. This replaces the per-task lookup loop with two batched
// queries; the produced content is the same.
func (r *GormTaskRepository) ListWithAssignments() ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := r.db.Preload("Assignments").Preload("Assignments.User").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
