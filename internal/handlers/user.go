package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labweb/task-tracker-api/internal/apierrors"
	"github.com/labweb/task-tracker-api/internal/services"
)

// UserHandler coordinates user-related HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns all users, or the users whose name contains the
// q query term.
func (h *UserHandler) ListUsers(c *gin.Context) {
	term := c.Query("q")

	users, err := h.userService.Search(term)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser registers a new user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	// Pointer fields distinguish an absent field from an empty one, so
	// each missing field gets its own message.
	type CreateUserRequest struct {
		ID       *string `json:"id"`
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	switch {
	case req.ID == nil:
		apierrors.BadRequest(c, "'id' must be a string")
		return
	case req.Name == nil:
		apierrors.BadRequest(c, "'name' must be a string")
		return
	case req.Email == nil:
		apierrors.BadRequest(c, "'email' must be a string")
		return
	case req.Password == nil:
		apierrors.BadRequest(c, "'password' must be a string")
		return
	}

	_, err := h.userService.Create(services.CreateUserInput{
		ID:       *req.ID,
		Name:     *req.Name,
		Email:    *req.Email,
		Password: *req.Password,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
	})
}

// DeleteUser removes a user and every assignment row referencing it.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.userService.Delete(id); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserIDPrefix),
		errors.Is(err, services.ErrUserIDTooShort),
		errors.Is(err, services.ErrNameTooShort),
		errors.Is(err, services.ErrWeakPassword):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUserIDTaken),
		errors.Is(err, services.ErrEmailTaken):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeAlreadyExists, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
