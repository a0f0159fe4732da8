package models

import "time"

// TaskState is the lifecycle state of a task. The three values form a
// conventional backlog → in-progress → done flow, but no transition order is
// enforced: a task may move from any state to any other.
type TaskState string

const (
	TaskStateBacklog    TaskState = "backlog"
	TaskStateInProgress TaskState = "in-progress"
	TaskStateDone       TaskState = "done"
)

// Valid reports whether s is one of the known task states.
func (s TaskState) Valid() bool {
	switch s {
	case TaskStateBacklog, TaskStateInProgress, TaskStateDone:
		return true
	}
	return false
}

// Task is a user-owned work item. UserID is immutable after creation and
// every read/update/delete is additionally filtered by it at the storage
// layer, so a task is never visible outside its owner's scope.
type Task struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	State       TaskState `json:"state"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "task"
}
