package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/internal/mock"
	"github.com/renivi-eth/todo-api/internal/store"
	"github.com/renivi-eth/todo-api/models"
)

func newTestTaskService(t *testing.T) (TaskService, *mock.MockTaskRepository) {
	ctrl := gomock.NewController(t)
	taskRepo := mock.NewMockTaskRepository(ctrl)
	svc := NewTaskService(taskRepo, logger.Nop())
	return svc, taskRepo
}

func TestCreateTask_DefaultsStateToBacklog(t *testing.T) {
	svc, taskRepo := newTestTaskService(t)
	ctx := context.Background()
	ownerID := "018f0000-0000-7000-8000-000000000001"

	taskRepo.EXPECT().
		CreateTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task models.Task) (models.Task, error) {
			require.NotEmpty(t, task.ID)
			require.Equal(t, ownerID, task.UserID)
			require.Equal(t, models.TaskStateBacklog, task.State)
			return task, nil
		})

	created, err := svc.CreateTask(ctx, ownerID, models.TaskData{Name: "write report"})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStateBacklog, created.State)
}

func TestCreateTask_EmptyName(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.CreateTask(context.Background(), "owner", models.TaskData{Name: ""})
	require.ErrorIs(t, err, ErrValidationTaskName)
}

func TestCreateTask_NameTooLong(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.CreateTask(context.Background(), "owner", models.TaskData{Name: strings.Repeat("a", 301)})
	require.ErrorIs(t, err, ErrValidationTaskName)
}

func TestCreateTask_DescriptionTooLong(t *testing.T) {
	svc, _ := newTestTaskService(t)

	data := models.TaskData{
		Name:        "write report",
		Description: strings.Repeat("a", 1001),
	}

	_, err := svc.CreateTask(context.Background(), "owner", data)
	require.ErrorIs(t, err, ErrValidationTaskDescription)
}

func TestCreateTask_UnknownState(t *testing.T) {
	svc, _ := newTestTaskService(t)

	data := models.TaskData{Name: "write report", State: "paused"}

	_, err := svc.CreateTask(context.Background(), "owner", data)
	require.ErrorIs(t, err, ErrValidationTaskState)
}

func TestCreateTask_MultibyteNameLengthCountsRunes(t *testing.T) {
	svc, taskRepo := newTestTaskService(t)

	// 300 two-byte runes: over 300 bytes but exactly at the rune limit
	name := strings.Repeat("ы", 300)

	taskRepo.EXPECT().
		CreateTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task models.Task) (models.Task, error) {
			return task, nil
		})

	_, err := svc.CreateTask(context.Background(), "owner", models.TaskData{Name: name})
	require.NoError(t, err)
}

func TestListTasks_InvalidSortProperty(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.ListTasks(context.Background(), "owner", models.ListOptions{SortProperty: "password_hash"})
	require.ErrorIs(t, err, ErrValidationSortProperty)
}

func TestListTasks_InvalidSortDirection(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.ListTasks(context.Background(), "owner", models.ListOptions{SortDirection: "sideways"})
	require.ErrorIs(t, err, ErrValidationSortDirection)
}

func TestListTasks_NegativeLimit(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.ListTasks(context.Background(), "owner", models.ListOptions{Limit: -1})
	require.ErrorIs(t, err, ErrValidationLimit)
}

func TestListTasks_InvalidStateFilter(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.ListTasks(context.Background(), "owner", models.ListOptions{State: "paused"})
	require.ErrorIs(t, err, ErrValidationTaskState)
}

func TestListTasks_PassesOptionsThrough(t *testing.T) {
	svc, taskRepo := newTestTaskService(t)
	ctx := context.Background()
	ownerID := "018f0000-0000-7000-8000-000000000001"
	opts := models.ListOptions{State: models.TaskStateDone, SortProperty: "name", SortDirection: "desc", Limit: 10}

	taskRepo.EXPECT().
		ListTasks(gomock.Any(), ownerID, opts).
		Return([]models.Task{}, nil)

	tasks, err := svc.ListTasks(ctx, ownerID, opts)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestUpdateTask_NotFoundIsPreserved(t *testing.T) {
	svc, taskRepo := newTestTaskService(t)
	ctx := context.Background()

	taskRepo.EXPECT().
		UpdateTask(gomock.Any(), gomock.Any()).
		Return(models.Task{}, store.ErrTaskNotFound)

	_, err := svc.UpdateTask(ctx, "owner", "task-id", models.TaskData{Name: "renamed"})
	require.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestDeleteTask_NotFoundIsPreserved(t *testing.T) {
	svc, taskRepo := newTestTaskService(t)
	ctx := context.Background()

	taskRepo.EXPECT().
		DeleteTask(gomock.Any(), "owner", "task-id").
		Return(models.Task{}, store.ErrTaskNotFound)

	_, err := svc.DeleteTask(ctx, "owner", "task-id")
	require.ErrorIs(t, err, store.ErrTaskNotFound)
}
