package models

import "time"

// TaskTag is the join record associating one task with one tag. Both sides
// must belong to the same user; the (TaskID, TagID) pair is unique. Deleting
// either side cascades to the relation.
type TaskTag struct {
	TaskID    string    `json:"task_id"`
	TagID     string    `json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the TaskTag model.
func (t TaskTag) TableName() string {
	return "task_tag"
}
