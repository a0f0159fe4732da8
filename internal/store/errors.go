package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup by email produces an empty
	// result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrTaskNotFound is returned when a query, update or delete targets a
	// task that does not exist under the requesting owner. A task owned by a
	// different user yields the same error so existence never leaks across
	// owners.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTagNotFound is the tag counterpart of [ErrTaskNotFound].
	ErrTagNotFound = errors.New("tag not found")

	// ErrTagNameTaken is returned when creating or renaming a tag collides
	// with another tag of the same owner (per-owner unique name constraint).
	ErrTagNameTaken = errors.New("tag name already taken")

	// ErrRelationExists is returned when linking a task and a tag that are
	// already linked (unique (task_id, tag_id) constraint).
	ErrRelationExists = errors.New("task-tag relation already exists")

	// ErrRelationNotFound is returned when unlinking a (task, tag) pair that
	// has no stored relation.
	ErrRelationNotFound = errors.New("task-tag relation not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an unsupported builder state).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
