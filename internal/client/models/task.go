package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Status      TaskStatus    `json:"status"`
	Priority    TaskPriority  `json:"priority"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	UserID      string        `json:"user_id"`
	GroupID     string        `json:"group_id,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	User        *UserSummary  `json:"user,omitempty"`
	Group       *GroupSummary `json:"group,omitempty"`
}

type TaskCreateRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Priority    TaskPriority `json:"priority,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	GroupID     string       `json:"group_id,omitempty"`
}

// TaskUpdateRequest is a partial task update; nil fields are left unchanged.
type TaskUpdateRequest struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	GroupID     *string       `json:"group_id,omitempty"`
}

type TaskStatusUpdateRequest struct {
	Status TaskStatus `json:"status"`
}

// TaskFilters narrows the task listing; zero values mean "no filter".
type TaskFilters struct {
	Status   TaskStatus
	Priority TaskPriority
	GroupID  string
	Page     int
	Limit    int
}

type TaskList = PaginatedResponse[Task]
