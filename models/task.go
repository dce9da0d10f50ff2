package models

// TaskStatus is the closed status domain stored in the Status column.
type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is one row of the remote task sheet. ID is an opaque identifier
// assigned at creation and stored in its own column; Row is the 1-based
// sheet row the task was read from and is only stable until rows are
// reordered out of band.
type Task struct {
	ID            string     `json:"id"`
	Row           int        `json:"row"`
	Timestamp     string     `json:"timestamp"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        TaskStatus `json:"status"`
	ScheduledDate string     `json:"scheduled_date"`
}

// TaskInput carries the caller-supplied fields of a create request.
type TaskInput struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        TaskStatus `json:"status"`
	ScheduledDate string     `json:"scheduled_date"`
}
