package models

// Credentials is the request body for registration and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TaskData carries the mutable task fields for create and update requests.
// Updates use full-replace semantics: all three fields are written as given,
// with State defaulting to backlog when empty.
type TaskData struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	State       TaskState `json:"state"`
}

// TagData carries the mutable tag fields for create and update requests.
type TagData struct {
	Name string `json:"name"`
}

// ListOptions are the optional filter/sort/limit parameters of the list
// operations. Zero values mean "no filter", "storage order" and "no cap".
type ListOptions struct {
	// State filters tasks by exact state match. Ignored for tags.
	State TaskState

	// SortProperty is the column to order by: "created_at" or "name".
	SortProperty string

	// SortDirection is "asc" (default) or "desc".
	SortDirection string

	// Limit caps the result size when positive.
	Limit int
}

// TokenResponse is the login response body.
type TokenResponse struct {
	Token string `json:"token"`
}
