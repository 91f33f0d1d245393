package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// IsValid reports whether the status is one of the known enum values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','in_progress','completed')" json:"status"`
	Remarks     string     `gorm:"type:text" json:"remarks"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CreatedBy   uint64     `gorm:"not null" json:"created_by"`
	UpdatedBy   *uint64    `json:"updated_by"`
	UserID      uint64     `gorm:"not null" json:"user_id"`

	// Relations
	Creator *User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Updater *User `gorm:"foreignKey:UpdatedBy" json:"updater,omitempty"`
	Owner   *User `gorm:"foreignKey:UserID" json:"owner,omitempty"`
}
