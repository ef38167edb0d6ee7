package repository

import (
	"github.com/labweb/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Search retrieves users whose name contains term, or all users when
// term is empty. Matching uses LIKE, so case sensitivity follows the
// store's collation.
func (r *GormUserRepository) Search(term string) ([]models.User, error) {
	users := make([]models.User, 0)
	query := r.db
	if term != "" {
		query = query.Where("name LIKE ?", "%"+term+"%")
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user row
func (r *GormUserRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.User{}).Error
}

// DeleteAssignments removes all assignment rows referencing a user
func (r *GormUserRepository) DeleteAssignments(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.TaskAssignment{}).Error
}
