package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labweb/task-tracker-api/internal/apierrors"
	"github.com/labweb/task-tracker-api/internal/dto"
	"github.com/labweb/task-tracker-api/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns all tasks, or the tasks whose title or description
// contains the q query term.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	term := c.Query("q")

	tasks, err := h.taskService.Search(term)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask registers a new task. Responds 200 on success; user
// creation responds 201 for the same outcome, an inconsistency the
// original API shipped with and clients depend on.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		ID          *string `json:"id"`
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	switch {
	case req.ID == nil:
		apierrors.BadRequest(c, "'id' must be a string")
		return
	case req.Title == nil:
		apierrors.BadRequest(c, "'title' must be a string")
		return
	case req.Description == nil:
		apierrors.BadRequest(c, "'description' must be a string")
		return
	}

	_, err := h.taskService.Create(services.CreateTaskInput{
		ID:          *req.ID,
		Title:       *req.Title,
		Description: *req.Description,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task created successfully",
	})
}

// UpdateTask overwrites a task with falsy-skip merging: an empty
// string or a zero status counts as "not provided" and keeps the
// stored value.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id := c.Param("id")

	type UpdateTaskRequest struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		CreatedAt   string `json:"created_at"`
		Status      int    `json:"status"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	_, err := h.taskService.Update(id, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   req.CreatedAt,
		Status:      req.Status,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
	})
}

// DeleteTask removes a task row. Assignments pointing at it are left
// behind.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id := c.Param("id")

	if err := h.taskService.Delete(id); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

// AssignUser links a user to a task.
func (h *TaskHandler) AssignUser(c *gin.Context) {
	taskID := c.Param("id")
	userID := c.Param("userId")

	if err := h.taskService.AssignUser(taskID, userID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User assigned to task successfully",
	})
}

// UnassignUser removes every assignment row matching the pair. The
// response is 200 even when nothing matched.
func (h *TaskHandler) UnassignUser(c *gin.Context) {
	taskID := c.Param("id")
	userID := c.Param("userId")

	if err := h.taskService.UnassignUser(taskID, userID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User unassigned from task successfully",
	})
}

// ListTasksWithUsers returns every task with its assigned users
// resolved into a responsibles array.
func (h *TaskHandler) ListTasksWithUsers(c *gin.Context) {
	tasks, err := h.taskService.ListWithResponsibles()
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskWithResponsiblesList(tasks))
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskIDPrefix),
		errors.Is(err, services.ErrAssigneeIDPrefix):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskIDTaken):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeAlreadyExists, err.Error())
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrAssigneeNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
