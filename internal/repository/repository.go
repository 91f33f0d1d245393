package repository

import (
	"github.com/DaveedGangi/taskmanagerBackend/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// ListAll retrieves every task regardless of ownership
	ListAll() ([]models.Task, error)

	// Update overwrites the given columns of a task. Updating an id
	// that does not exist affects zero rows and is not an error.
	Update(id uint64, updates map[string]interface{}) error

	// Delete removes a task. Deleting an id that does not exist is
	// not an error.
	Delete(id uint64) error
}
