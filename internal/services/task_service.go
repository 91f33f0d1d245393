package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/DaveedGangi/taskmanagerBackend/internal/models"
	"github.com/DaveedGangi/taskmanagerBackend/internal/repository"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidStatus = errors.New("invalid task status")
)

// TaskService handles task business logic. Every operation assumes the
// caller passed the auth gate; the authenticated user id drives the
// attribution columns. Ownership is deliberately not enforced on reads
// or mutations: the store behaves as a shared task board.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Status      models.TaskStatus
	Remarks     string
	CreatorID   uint64
}

// UpdateTaskInput represents input for updating a task. All content
// fields are overwritten, matching PUT semantics.
type UpdateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Status      models.TaskStatus
	Remarks     string
	ActorID     uint64
}

// Create inserts a new task attributed to the creator. The creator also
// becomes the owning user.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	if input.Status == "" {
		input.Status = models.TaskStatusPending
	}
	if !input.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Status:      input.Status,
		Remarks:     input.Remarks,
		CreatedBy:   input.CreatorID,
		UserID:      input.CreatorID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// List returns every task in the store.
func (s *TaskService) List() ([]models.Task, error) {
	tasks, err := s.taskRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns the task with the given id.
func (s *TaskService) Get(taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// Update overwrites the task's content fields and refreshes the update
// attribution. A missing id affects zero rows and is still reported as
// success; it never creates a task.
func (s *TaskService) Update(taskID uint64, input UpdateTaskInput) error {
	status := input.Status
	if status == "" {
		status = models.TaskStatusPending
	}
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	updates := map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
		"due_date":    input.DueDate,
		"status":      status,
		"remarks":     input.Remarks,
		"updated_by":  input.ActorID,
	}

	if err := s.taskRepo.Update(taskID, updates); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// Delete removes the task with the given id. Deleting a missing id is a
// no-op reported as success.
func (s *TaskService) Delete(taskID uint64) error {
	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
