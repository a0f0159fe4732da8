package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/renivi-eth/todo-api/models"
)

const (
	createUser = `INSERT INTO users (id, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING id, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	createTask = `INSERT INTO task (id, name, description, state, user_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, description, state, user_id, created_at, updated_at;`

	getTask = `SELECT id, name, description, state, user_id, created_at, updated_at
    FROM task
    WHERE id = $1 AND user_id = $2;`

	updateTask = `UPDATE task
    SET name = $1, description = $2, state = $3, updated_at = NOW()
    WHERE id = $4 AND user_id = $5
    RETURNING id, name, description, state, user_id, created_at, updated_at;`

	deleteTask = `DELETE FROM task
    WHERE id = $1 AND user_id = $2
    RETURNING id, name, description, state, user_id, created_at, updated_at;`

	createTag = `INSERT INTO tag (id, name, user_id)
    VALUES ($1, $2, $3)
    RETURNING id, name, user_id, created_at, updated_at;`

	getTag = `SELECT id, name, user_id, created_at, updated_at
    FROM tag
    WHERE id = $1 AND user_id = $2;`

	updateTag = `UPDATE tag
    SET name = $1, updated_at = NOW()
    WHERE id = $2 AND user_id = $3
    RETURNING id, name, user_id, created_at, updated_at;`

	deleteTag = `DELETE FROM tag
    WHERE id = $1 AND user_id = $2
    RETURNING id, name, user_id, created_at, updated_at;`

	checkTaskOwnership = `SELECT id FROM task WHERE id = $1 AND user_id = $2;`
	checkTagOwnership  = `SELECT id FROM tag WHERE id = $1 AND user_id = $2;`

	createRelation = `INSERT INTO task_tag (task_id, tag_id)
    VALUES ($1, $2)
    RETURNING task_id, tag_id, created_at;`

	deleteRelation = `DELETE FROM task_tag
    WHERE task_id = $1 AND tag_id = $2
    RETURNING task_id, tag_id, created_at;`
)

// psql is the shared squirrel builder configured for PostgreSQL ($N
// placeholders). Dynamic list queries are assembled with it; everything with
// a fixed shape stays a plain constant above.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	taskColumns = []string{"id", "name", "description", "state", "user_id", "created_at", "updated_at"}
	tagColumns  = []string{"id", "name", "user_id", "created_at", "updated_at"}
)

// buildListTasksQuery assembles the task listing SELECT for one owner with
// the optional state filter, sort and limit applied. Sort property and
// direction are validated at the service layer before they reach the builder.
func buildListTasksQuery(ownerID string, opts models.ListOptions) (string, []any, error) {
	builder := psql.Select(taskColumns...).
		From("task").
		Where(sq.Eq{"user_id": ownerID})

	if opts.State != "" {
		builder = builder.Where(sq.Eq{"state": opts.State})
	}

	if opts.SortProperty != "" {
		builder = builder.OrderBy(opts.SortProperty + " " + sortDirection(opts))
	}

	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}

	return builder.ToSql()
}

// buildListTagsQuery assembles the tag listing SELECT for one owner with the
// optional sort and limit applied.
func buildListTagsQuery(ownerID string, opts models.ListOptions) (string, []any, error) {
	builder := psql.Select(tagColumns...).
		From("tag").
		Where(sq.Eq{"user_id": ownerID})

	if opts.SortProperty != "" {
		builder = builder.OrderBy(opts.SortProperty + " " + sortDirection(opts))
	}

	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}

	return builder.ToSql()
}

// buildTagsForTaskQuery assembles the relation→tag join returning all tags
// attached to the given task. Filtering on tag.user_id keeps the result
// inside the owner's scope even if the task id belongs to someone else.
func buildTagsForTaskQuery(ownerID, taskID string) (string, []any, error) {
	return psql.Select(
		"tag.id", "tag.name", "tag.user_id", "tag.created_at", "tag.updated_at").
		From("task_tag").
		Join("tag ON task_tag.tag_id = tag.id").
		Where(sq.Eq{"task_tag.task_id": taskID, "tag.user_id": ownerID}).
		ToSql()
}

func sortDirection(opts models.ListOptions) string {
	if opts.SortDirection == "desc" {
		return "DESC"
	}
	return "ASC"
}
