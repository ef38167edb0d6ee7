package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/labweb/task-tracker-api/internal/models"
	"github.com/labweb/task-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskIDPrefix     = errors.New("'id' must start with the letter 't'")
	ErrTaskIDTaken      = errors.New("'id' already exists")
	ErrTaskNotFound     = errors.New("'id' not found, the task does not exist")
	ErrAssigneeIDPrefix = errors.New("'userId' must start with the letter 'f'")
	ErrAssigneeNotFound = errors.New("'userId' not found, the user does not exist")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	ID          string
	Title       string
	Description string
}

// UpdateTaskInput carries the replacement values for a task update.
// Zero values mean "keep the stored value": an empty string or a zero
// status is indistinguishable from an omitted field.
type UpdateTaskInput struct {
	Title       string
	Description string
	CreatedAt   string
	Status      int
}

// Search returns tasks whose title or description contains term, or
// all tasks when term is empty
func (s *TaskService) Search(term string) ([]models.Task, error) {
	tasks, err := s.taskRepo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search tasks: %w", err)
	}
	return tasks, nil
}

// Create validates and stores a new task. The creation timestamp is
// filled in here; duplicate ids are detected through the store's
// primary-key constraint.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	if !strings.HasPrefix(input.ID, "t") {
		return nil, ErrTaskIDPrefix
	}

	task := &models.Task{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   time.Now().Format(time.DateTime),
	}

	if err := s.taskRepo.Create(task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTaskIDTaken
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Update merges the provided values over the stored task with
// falsy-skip semantics: any empty string or zero status falls back to
// the stored value.
func (s *TaskService) Update(id string, input UpdateTaskInput) (*models.Task, error) {
	if !strings.HasPrefix(id, "t") {
		return nil, ErrTaskIDPrefix
	}

	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != "" {
		task.Title = input.Title
	}
	if input.Description != "" {
		task.Description = input.Description
	}
	if input.CreatedAt != "" {
		task.CreatedAt = input.CreatedAt
	}
	if input.Status != 0 {
		task.Status = input.Status
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes a task row. Assignment rows referencing the task stay
// behind; only user deletion cascades.
func (s *TaskService) Delete(id string) error {
	if !strings.HasPrefix(id, "t") {
		return ErrTaskIDPrefix
	}

	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// AssignUser links a user to a task. Both referents are checked
// sequentially, task first. No duplicate check is made: assigning the
// same pair twice stores two rows.
func (s *TaskService) AssignUser(taskID, userID string) error {
	if err := s.checkAssignmentIDs(taskID, userID); err != nil {
		return err
	}

	assignment := &models.TaskAssignment{
		UserID: userID,
		TaskID: taskID,
	}
	if err := s.taskRepo.Assign(assignment); err != nil {
		return fmt.Errorf("failed to assign user to task: %w", err)
	}

	return nil
}

// UnassignUser removes every assignment row matching both ids. It
// succeeds even when no row matched.
func (s *TaskService) UnassignUser(taskID, userID string) error {
	if err := s.checkAssignmentIDs(taskID, userID); err != nil {
		return err
	}

	if err := s.taskRepo.Unassign(taskID, userID); err != nil {
		return fmt.Errorf("failed to unassign user from task: %w", err)
	}

	return nil
}

// ListWithResponsibles returns every task with its assigned users
// resolved.
func (s *TaskService) ListWithResponsibles() ([]models.Task, error) {
	tasks, err := s.taskRepo.ListWithAssignments()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks with assignments: %w", err)
	}
	return tasks, nil
}

// checkAssignmentIDs validates both path ids and verifies, task first,
// that the referenced rows exist.
func (s *TaskService) checkAssignmentIDs(taskID, userID string) error {
	if !strings.HasPrefix(taskID, "t") {
		return ErrTaskIDPrefix
	}
	if !strings.HasPrefix(userID, "f") {
		return ErrAssigneeIDPrefix
	}

	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssigneeNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	return nil
}
