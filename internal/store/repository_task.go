package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
//
// Every statement it issues filters on user_id next to the primary key, so
// ownership is enforced inside the query itself and never as a separate
// read-after-check.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// ListTasks returns all tasks owned by ownerID with the optional state
// filter, sort and limit applied. An empty result is an empty slice, not an
// error.
func (r *taskRepository) ListTasks(ctx context.Context, ownerID string, opts models.ListOptions) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTasksQuery(ownerID, opts)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err := scanTask(rows, &task); err != nil {
			log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("error scanning task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// GetTask returns the task with the given id owned by ownerID, or
// [ErrTaskNotFound] if no such row exists under that owner.
func (r *taskRepository) GetTask(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	row := r.db.QueryRowContext(ctx, getTask, taskID, ownerID)
	return r.scanTaskRow(ctx, row, "*taskRepository.GetTask")
}

// CreateTask persists a new task and returns the stored row with
// server-assigned timestamps (created_at = updated_at = now()).
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	row := r.db.QueryRowContext(ctx, createTask, task.ID, task.Name, task.Description, task.State, task.UserID)
	return r.scanTaskRow(ctx, row, "*taskRepository.CreateTask")
}

// UpdateTask replaces the three mutable fields (name, description, state) of
// the task owned by task.UserID and refreshes updated_at. Returns
// [ErrTaskNotFound] when the row does not exist under that owner.
func (r *taskRepository) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	row := r.db.QueryRowContext(ctx, updateTask, task.Name, task.Description, task.State, task.ID, task.UserID)
	return r.scanTaskRow(ctx, row, "*taskRepository.UpdateTask")
}

// DeleteTask removes the task owned by ownerID and returns the deleted row.
// Relations referencing the task are removed by the ON DELETE CASCADE
// constraint. Returns [ErrTaskNotFound] when absent under that owner.
func (r *taskRepository) DeleteTask(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	row := r.db.QueryRowContext(ctx, deleteTask, taskID, ownerID)
	return r.scanTaskRow(ctx, row, "*taskRepository.DeleteTask")
}

// scanTaskRow scans a single RETURNING/SELECT row into a task, translating
// [sql.ErrNoRows] to [ErrTaskNotFound].
func (r *taskRepository) scanTaskRow(ctx context.Context, row *sql.Row, fn string) (models.Task, error) {
	log := logger.FromContext(ctx)

	var task models.Task
	if err := scanTask(row, &task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).Str("func", fn).Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return task, nil
}

// rowScanner is the scanning subset shared by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner, task *models.Task) error {
	return row.Scan(
		&task.ID,
		&task.Name,
		&task.Description,
		&task.State,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
}
