package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renivi-eth/todo-api/internal/service"
	"github.com/renivi-eth/todo-api/internal/store"
	"github.com/renivi-eth/todo-api/models"
)

func TestListTasks_QueryParametersReachService(t *testing.T) {
	var seenOpts models.ListOptions
	tasks := &mockTaskService{
		listTasksFn: func(_ context.Context, _ string, opts models.ListOptions) ([]models.Task, error) {
			seenOpts = opts
			return []models.Task{}, nil
		},
	}
	router := newTestRouter(t, &service.Services{TaskService: tasks})

	recorder := doRequest(t, router, http.MethodGet, "/tasks?state=done&sortProperty=name&sortDirection=desc&limit=10", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	assert.Equal(t, models.TaskStateDone, seenOpts.State)
	assert.Equal(t, "name", seenOpts.SortProperty)
	assert.Equal(t, "desc", seenOpts.SortDirection)
	assert.Equal(t, 10, seenOpts.Limit)
}

func TestListTasks_NonNumericLimit(t *testing.T) {
	router := newTestRouter(t, &service.Services{TaskService: &mockTaskService{}})

	recorder := doRequest(t, router, http.MethodGet, "/tasks?limit=ten", "")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetTask_Success(t *testing.T) {
	tasks := &mockTaskService{
		getTaskFn: func(_ context.Context, ownerID, taskID string) (models.Task, error) {
			require.Equal(t, testOwnerID, ownerID)
			require.Equal(t, testTaskID, taskID)
			return models.Task{ID: taskID, Name: "write report", UserID: ownerID}, nil
		},
	}
	router := newTestRouter(t, &service.Services{TaskService: tasks})

	recorder := doRequest(t, router, http.MethodGet, "/task/"+testTaskID, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &task))
	assert.Equal(t, testTaskID, task.ID)
}

func TestGetTask_InvalidUUID(t *testing.T) {
	router := newTestRouter(t, &service.Services{TaskService: &mockTaskService{}})

	recorder := doRequest(t, router, http.MethodGet, "/task/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetTask_NotFound(t *testing.T) {
	tasks := &mockTaskService{
		getTaskFn: func(_ context.Context, _, _ string) (models.Task, error) {
			return models.Task{}, store.ErrTaskNotFound
		},
	}
	router := newTestRouter(t, &service.Services{TaskService: tasks})

	recorder := doRequest(t, router, http.MethodGet, "/task/"+testTaskID, "")
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCreateTask_Success(t *testing.T) {
	tasks := &mockTaskService{
		createTaskFn: func(_ context.Context, ownerID string, data models.TaskData) (models.Task, error) {
			return models.Task{ID: testTaskID, Name: data.Name, State: models.TaskStateBacklog, UserID: ownerID}, nil
		},
	}
	router := newTestRouter(t, &service.Services{TaskService: tasks})

	body := jsonBody(t, models.TaskData{Name: "write report"})
	recorder := doRequest(t, router, http.MethodPost, "/task", body)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &task))
	assert.Equal(t, models.TaskStateBacklog, task.State)
}

func TestCreateTask_ValidationFailure(t *testing.T) {
	tasks := &mockTaskService{
		createTaskFn: func(_ context.Context, _ string, _ models.TaskData) (models.Task, error) {
			return models.Task{}, service.ErrValidationTaskName
		},
	}
	router := newTestRouter(t, &service.Services{TaskService: tasks})

	recorder := doRequest(t, router, http.MethodPost, "/task", jsonBody(t, models.TaskData{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateTask_Success(t *testing.T) {
	tasks := &mockTaskService{
		updateTaskFn: func(_ context.Context, _, taskID string, data models.TaskData) (models.Task, error) {
			return models.Task{ID: taskID, Name: data.Name, State: data.State}, nil
		},
	}
	router := newTestRouter(t, &service.Services{TaskService: tasks})

	body := jsonBody(t, models.TaskData{Name: "renamed", State: models.TaskStateDone})
	recorder := doRequest(t, router, http.MethodPut, "/task/"+testTaskID, body)
	require.Equal(t, http.StatusOK, recorder.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &task))
	assert.Equal(t, "renamed", task.Name)
	assert.Equal(t, models.TaskStateDone, task.State)
}

func TestDeleteTask_ReturnsDeletedTask(t *testing.T) {
	tasks := &mockTaskService{
		deleteTaskFn: func(_ context.Context, _, taskID string) (models.Task, error) {
			return models.Task{ID: taskID, Name: "write report"}, nil
		},
	}
	router := newTestRouter(t, &service.Services{TaskService: tasks})

	recorder := doRequest(t, router, http.MethodDelete, "/task/"+testTaskID, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &task))
	assert.Equal(t, testTaskID, task.ID)
}
