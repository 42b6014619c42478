package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          int32      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Progress    int32      `json:"progress"`
	ProjectID   *int32     `json:"project_id,omitempty"`
	AssignedTo  UserRef    `json:"assigned_to"`
	CreatedBy   UserRef    `json:"created_by"`
	CreatedOn   time.Time  `json:"created_on"`
	UpdatedOn   time.Time  `json:"updated_on"`
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	AssignedTo  *int32      `json:"assigned_to"`
	Status      *TaskStatus `json:"status"`
	Progress    *int32      `json:"progress"`
}
