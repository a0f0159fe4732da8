package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/internal/store"
	"github.com/renivi-eth/todo-api/internal/utils"
	"github.com/renivi-eth/todo-api/models"
)

// taskService is the concrete implementation of TaskService. It enforces the
// field-level invariants (name/description length, state enum) and defaults,
// then delegates to the repository, which applies the ownership filter.
type taskService struct {
	taskRepository store.TaskRepository
	uuidGenerator  *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService over the given repository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// ListTasks returns the owner's tasks after validating the list options.
// An empty result is an empty slice, not an error.
func (s *taskService) ListTasks(ctx context.Context, ownerID string, opts models.ListOptions) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	if err := validateListOptions(opts, true); err != nil {
		log.Error().Err(err).Msg("invalid list options provided")
		return nil, err
	}

	tasks, err := s.taskRepository.ListTasks(ctx, ownerID, opts)
	if err != nil {
		log.Err(err).Msg("task listing ended with error")
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// GetTask returns one task owned by ownerID.
func (s *taskService) GetTask(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, ownerID, taskID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("taskID", taskID).Msg("task lookup ended with error")
		return models.Task{}, fmt.Errorf("task lookup ended with error: %w", err)
	}

	return task, nil
}

// CreateTask validates the payload, fills defaults (state = backlog) and
// persists a new task under ownerID.
func (s *taskService) CreateTask(ctx context.Context, ownerID string, data models.TaskData) (models.Task, error) {
	log := logger.FromContext(ctx)

	data, err := normalizeTaskData(data)
	if err != nil {
		log.Error().Err(err).Msg("invalid task data provided")
		return models.Task{}, err
	}

	task := models.Task{
		ID:          s.uuidGenerator.Generate(),
		Name:        data.Name,
		Description: data.Description,
		State:       data.State,
		UserID:      ownerID,
	}

	createdTask, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return createdTask, nil
}

// UpdateTask validates the payload and replaces the three mutable fields of
// the task owned by ownerID (full replace, not a partial merge).
func (s *taskService) UpdateTask(ctx context.Context, ownerID, taskID string, data models.TaskData) (models.Task, error) {
	log := logger.FromContext(ctx)

	data, err := normalizeTaskData(data)
	if err != nil {
		log.Error().Err(err).Msg("invalid task data provided")
		return models.Task{}, err
	}

	task := models.Task{
		ID:          taskID,
		Name:        data.Name,
		Description: data.Description,
		State:       data.State,
		UserID:      ownerID,
	}

	updatedTask, err := s.taskRepository.UpdateTask(ctx, task)
	if err != nil {
		log.Err(err).Str("taskID", taskID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	return updatedTask, nil
}

// DeleteTask removes the task owned by ownerID and returns the deleted row.
// Relations to tags are removed by the storage cascade.
func (s *taskService) DeleteTask(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	deletedTask, err := s.taskRepository.DeleteTask(ctx, ownerID, taskID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("taskID", taskID).Msg("task deletion ended with error")
		return models.Task{}, fmt.Errorf("task deletion ended with error: %w", err)
	}

	return deletedTask, nil
}

// normalizeTaskData validates the mutable task fields and applies the state
// default. Length checks count runes, not bytes.
func normalizeTaskData(data models.TaskData) (models.TaskData, error) {
	if nameLen := utf8.RuneCountInString(data.Name); nameLen < 1 || nameLen > 300 {
		return models.TaskData{}, ErrValidationTaskName
	}

	if utf8.RuneCountInString(data.Description) > 1000 {
		return models.TaskData{}, ErrValidationTaskDescription
	}

	if data.State == "" {
		data.State = models.TaskStateBacklog
	}
	if !data.State.Valid() {
		return models.TaskData{}, ErrValidationTaskState
	}

	return data, nil
}

// validateListOptions checks the sort/limit parameters shared by task and
// tag listing. The state filter is only meaningful for tasks.
func validateListOptions(opts models.ListOptions, allowState bool) error {
	if opts.State != "" {
		if !allowState || !opts.State.Valid() {
			return ErrValidationTaskState
		}
	}

	switch opts.SortProperty {
	case "", "created_at", "name":
	default:
		return ErrValidationSortProperty
	}

	switch opts.SortDirection {
	case "", "asc", "desc":
	default:
		return ErrValidationSortDirection
	}

	if opts.Limit < 0 {
		return ErrValidationLimit
	}

	return nil
}
