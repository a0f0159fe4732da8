package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/renivi-eth/todo-api/internal/service"
	"github.com/renivi-eth/todo-api/models"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		TaskService: &mockTaskService{},
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		TaskService: &mockTaskService{},
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "token-without-scheme")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	router := newTestRouter(t, &service.Services{
		AuthService: auth,
		TaskService: &mockTaskService{},
	})

	recorder := doRequest(t, router, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddleware_PropagatesUserID(t *testing.T) {
	var seenOwnerID string
	tasks := &mockTaskService{
		listTasksFn: func(_ context.Context, ownerID string, _ models.ListOptions) ([]models.Task, error) {
			seenOwnerID = ownerID
			return []models.Task{}, nil
		},
	}
	router := newTestRouter(t, &service.Services{TaskService: tasks})

	recorder := doRequest(t, router, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, testOwnerID, seenOwnerID)
}

func TestAuthMiddleware_PublicRoutesSkipAuth(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, credentials models.Credentials) (models.User, error) {
			return models.User{ID: testOwnerID, Email: credentials.Email}, nil
		},
	}
	router := newTestRouter(t, &service.Services{AuthService: auth})

	// no Authorization header at all
	req := httptest.NewRequest(http.MethodPost, "/auth/registration",
		strings.NewReader(jsonBody(t, validCredentials)))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
}
