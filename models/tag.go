package models

import "time"

// Tag is a user-owned label that can be attached to any number of the same
// user's tasks. Tag names are unique per owner, not globally.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Tag model.
func (t Tag) TableName() string {
	return "tag"
}
