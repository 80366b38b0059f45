package domain

import "time"

type Task struct {
	Id          TaskId     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	OwnerId     UserId     `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTaskData carries caller-supplied fields for task creation. OwnerId is
// deliberately absent: it is always taken from the verified identity.
type NewTaskData struct {
	Title       string
	Description string
}

// TaskPatch is a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}
