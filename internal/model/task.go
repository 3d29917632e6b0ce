package model

// TaskStatus is the column a task sits in on a board. All transitions
// between the three statuses are permitted; there is no workflow ordering.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not-started"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is one of the three known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Toggled returns the status after a toggle-complete action: a completed
// task reopens as not-started, anything else becomes completed.
func (s TaskStatus) Toggled() TaskStatus {
	if s == StatusCompleted {
		return StatusNotStarted
	}
	return StatusCompleted
}

// Task is a unit of work belonging to a board.
//
// Fields:
//  ID          – opaque identifier of the task.
//  BoardID     – parent board; authorization is resolved through it.
//  Title       – required, non-empty.
//  Description – free text; may contain markdown, never parsed server-side.
//  Status      – one of the TaskStatus values.
//  DueDate     – optional ISO-8601 timestamp, nil when the task has no due date.
//  Tags        – free-text labels; order is not significant.
type Task struct {
	ID          string     `json:"id"`
	BoardID     string     `json:"boardId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     *string    `json:"dueDate"`
	Tags        []string   `json:"tags"`
}
