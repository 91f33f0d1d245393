package dto

import (
	"time"

	"github.com/DaveedGangi/taskmanagerBackend/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	DueDate     *time.Time        `json:"due_date"`
	Status      models.TaskStatus `json:"status"`
	Remarks     string            `json:"remarks"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	CreatedBy   uint64            `json:"created_by"`
	UpdatedBy   *uint64           `json:"updated_by"`
	UserID      uint64            `json:"user_id"`
}

// TaskListResponse represents the list of all tasks
type TaskListResponse struct {
	Tasks []TaskDTO `json:"tasks"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		Status:      task.Status,
		Remarks:     task.Remarks,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		CreatedBy:   task.CreatedBy,
		UpdatedBy:   task.UpdatedBy,
		UserID:      task.UserID,
	}
}

// ToTaskListResponse converts a slice of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return TaskListResponse{Tasks: items}
}
