package dto

import (
	"github.com/labweb/task-tracker-api/internal/models"
)

// TaskWithResponsibles represents a task together with the users
// assigned to it.
type TaskWithResponsibles struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	CreatedAt    string        `json:"created_at"`
	Status       int           `json:"status"`
	Responsibles []models.User `json:"responsibles"`
}

// ToTaskWithResponsibles converts a Task with preloaded assignments.
// Responsibles is always non-nil so a task without assignments
// serializes as an empty array.
func ToTaskWithResponsibles(task models.Task) TaskWithResponsibles {
	responsibles := make([]models.User, 0, len(task.Assignments))
	for _, assignment := range task.Assignments {
		responsibles = append(responsibles, assignment.User)
	}

	return TaskWithResponsibles{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		CreatedAt:    task.CreatedAt,
		Status:       task.Status,
		Responsibles: responsibles,
	}
}

// ToTaskWithResponsiblesList converts a slice of tasks
func ToTaskWithResponsiblesList(tasks []models.Task) []TaskWithResponsibles {
	result := make([]TaskWithResponsibles, len(tasks))
	for i, task := range tasks {
		result[i] = ToTaskWithResponsibles(task)
	}
	return result
}
