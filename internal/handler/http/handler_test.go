package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/internal/service"
	"github.com/renivi-eth/todo-api/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.registerUserFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockTaskService implements service.TaskService for unit tests.
type mockTaskService struct {
	listTasksFn  func(ctx context.Context, ownerID string, opts models.ListOptions) ([]models.Task, error)
	getTaskFn    func(ctx context.Context, ownerID, taskID string) (models.Task, error)
	createTaskFn func(ctx context.Context, ownerID string, data models.TaskData) (models.Task, error)
	updateTaskFn func(ctx context.Context, ownerID, taskID string, data models.TaskData) (models.Task, error)
	deleteTaskFn func(ctx context.Context, ownerID, taskID string) (models.Task, error)
}

func (m *mockTaskService) ListTasks(ctx context.Context, ownerID string, opts models.ListOptions) ([]models.Task, error) {
	return m.listTasksFn(ctx, ownerID, opts)
}

func (m *mockTaskService) GetTask(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	return m.getTaskFn(ctx, ownerID, taskID)
}

func (m *mockTaskService) CreateTask(ctx context.Context, ownerID string, data models.TaskData) (models.Task, error) {
	return m.createTaskFn(ctx, ownerID, data)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, ownerID, taskID string, data models.TaskData) (models.Task, error) {
	return m.updateTaskFn(ctx, ownerID, taskID, data)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, ownerID, taskID string) (models.Task, error) {
	return m.deleteTaskFn(ctx, ownerID, taskID)
}

// mockTagService implements service.TagService for unit tests.
type mockTagService struct {
	listTagsFn  func(ctx context.Context, ownerID string, opts models.ListOptions) ([]models.Tag, error)
	getTagFn    func(ctx context.Context, ownerID, tagID string) (models.Tag, error)
	createTagFn func(ctx context.Context, ownerID string, data models.TagData) (models.Tag, error)
	updateTagFn func(ctx context.Context, ownerID, tagID string, data models.TagData) (models.Tag, error)
	deleteTagFn func(ctx context.Context, ownerID, tagID string) (models.Tag, error)
}

func (m *mockTagService) ListTags(ctx context.Context, ownerID string, opts models.ListOptions) ([]models.Tag, error) {
	return m.listTagsFn(ctx, ownerID, opts)
}

func (m *mockTagService) GetTag(ctx context.Context, ownerID, tagID string) (models.Tag, error) {
	return m.getTagFn(ctx, ownerID, tagID)
}

func (m *mockTagService) CreateTag(ctx context.Context, ownerID string, data models.TagData) (models.Tag, error) {
	return m.createTagFn(ctx, ownerID, data)
}

func (m *mockTagService) UpdateTag(ctx context.Context, ownerID, tagID string, data models.TagData) (models.Tag, error) {
	return m.updateTagFn(ctx, ownerID, tagID, data)
}

func (m *mockTagService) DeleteTag(ctx context.Context, ownerID, tagID string) (models.Tag, error) {
	return m.deleteTagFn(ctx, ownerID, tagID)
}

// mockRelationService implements service.RelationService for unit tests.
type mockRelationService struct {
	linkTaskTagFn     func(ctx context.Context, ownerID, taskID, tagID string) (models.TaskTag, error)
	listTagsForTaskFn func(ctx context.Context, ownerID, taskID string) ([]models.Tag, error)
	unlinkTaskTagFn   func(ctx context.Context, ownerID, taskID, tagID string) (models.TaskTag, error)
}

func (m *mockRelationService) LinkTaskTag(ctx context.Context, ownerID, taskID, tagID string) (models.TaskTag, error) {
	return m.linkTaskTagFn(ctx, ownerID, taskID, tagID)
}

func (m *mockRelationService) ListTagsForTask(ctx context.Context, ownerID, taskID string) ([]models.Tag, error) {
	return m.listTagsForTaskFn(ctx, ownerID, taskID)
}

func (m *mockRelationService) UnlinkTaskTag(ctx context.Context, ownerID, taskID, tagID string) (models.TaskTag, error) {
	return m.unlinkTaskTagFn(ctx, ownerID, taskID, tagID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testOwnerID = "018f0000-0000-7000-8000-000000000001"
	testTaskID  = "018f0000-0000-7000-8000-00000000000a"
	testTagID   = "018f0000-0000-7000-8000-00000000000b"
)

// passthroughAuth returns an auth service whose ParseToken accepts any token
// and resolves it to testOwnerID.
func passthroughAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: testOwnerID}, nil
		},
	}
}

// newTestRouter builds the full chi router over the given service mocks, so
// tests exercise routing, auth middleware and handlers together.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = passthroughAuth()
	}
	return NewHandler(svcs, logger.Nop()).Init()
}

// doRequest executes an HTTP request against the router with the test bearer
// token attached and returns the recorder.
func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer test-token")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
