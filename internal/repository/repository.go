package repository

import (
	"github.com/labweb/task-tracker-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Search retrieves users whose name contains term, or all users
	// when term is empty
	Search(term string) ([]models.User, error)

	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// Delete removes a user row
	Delete(id string) error

	// DeleteAssignments removes all assignment rows referencing a user
	DeleteAssignments(userID string) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Search retrieves tasks whose title or description contains term,
	// or all tasks when term is empty
	Search(term string) ([]models.Task, error)

	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id string) (*models.Task, error)

	// Update overwrites a task row
	Update(task *models.Task) error

	// Delete removes a task row. Assignment rows referencing it are
	// deliberately left in place.
	Delete(id string) error

	// Assign inserts one assignment row
	Assign(assignment *models.TaskAssignment) error

	// Unassign removes all assignment rows matching both ids
	Unassign(taskID, userID string) error

	// ListWithAssignments retrieves all tasks with their assignments
	// and the assigned users preloaded
	ListWithAssignments() ([]models.Task, error)
}
