package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/labweb/task-tracker-api/internal/models"
	"github.com/labweb/task-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserIDPrefix   = errors.New("'id' must start with the letter 'f'")
	ErrUserIDTooShort = errors.New("'id' must be at least 4 characters long")
	ErrNameTooShort   = errors.New("'name' must be at least 2 characters long")
	ErrWeakPassword   = errors.New("'password' must be 8 to 12 characters long, with upper and lower case letters, at least one digit and one special character")
	ErrUserIDTaken    = errors.New("'id' already exists")
	ErrEmailTaken     = errors.New("'email' already exists")
	ErrUserNotFound   = errors.New("'id' not found, the user does not exist")
)

// Go's regexp has no lookahead, so the password rule is split into one
// match per character class plus a length check.
var (
	passwordLower   = regexp.MustCompile(`[a-z]`)
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordDigit   = regexp.MustCompile(`\d`)
	passwordSpecial = regexp.MustCompile(`[^\da-zA-Z]`)
)

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// Search returns users whose name contains term, or all users when
// term is empty
func (s *UserService) Search(term string) ([]models.User, error) {
	users, err := s.userRepo.Search(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

// Create validates and stores a new user. Duplicate detection relies
// on the store's uniqueness constraints: the insert is attempted and a
// translated gorm.ErrDuplicatedKey is the duplicate signal, rather
// than a racy check-then-insert. A follow-up lookup decides whether
// the id or the email collided so the two cases stay distinguishable.
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	if !strings.HasPrefix(input.ID, "f") {
		return nil, ErrUserIDPrefix
	}
	if len(input.ID) < 4 {
		return nil, ErrUserIDTooShort
	}
	if len(input.Name) < 2 {
		return nil, ErrNameTooShort
	}
	if !ValidPassword(input.Password) {
		return nil, ErrWeakPassword
	}

	user := &models.User{
		ID:       input.ID,
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if _, lookupErr := s.userRepo.FindByID(input.ID); lookupErr == nil {
				return nil, ErrUserIDTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Delete removes a user and all assignment rows referencing it. The
// cascade is two sequential statements, not a transaction: a failure
// between them leaves the user without assignments, which the API
// contract accepts.
func (s *UserService) Delete(id string) error {
	if !strings.HasPrefix(id, "f") {
		return ErrUserIDPrefix
	}

	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.DeleteAssignments(id); err != nil {
		return fmt.Errorf("failed to delete user assignments: %w", err)
	}
	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// ValidPassword reports whether a password is 8 to 12 characters long
// and contains an upper case letter, a lower case letter, a digit and
// a special character.
func ValidPassword(password string) bool {
	if len(password) < 8 || len(password) > 12 {
		return false
	}
	return passwordLower.MatchString(password) &&
		passwordUpper.MatchString(password) &&
		passwordDigit.MatchString(password) &&
		passwordSpecial.MatchString(password)
}
