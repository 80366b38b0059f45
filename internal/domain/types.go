package domain

type (
	Email    = string
	Password = string
	UserId   = string
	TaskId   = string

	TaskStatus = string
)

// Task status values. New tasks start as StatusPending.
const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}
