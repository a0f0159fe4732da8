package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	recorder := httptest.NewRecorder()

	n, err := WriteJSON(recorder, map[string]string{"status": "ok"}, http.StatusCreated)
	require.NoError(t, err)
	assert.Positive(t, n)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestWriteJSON_MarshalFailure(t *testing.T) {
	recorder := httptest.NewRecorder()

	// channels cannot be marshalled to JSON
	_, err := WriteJSON(recorder, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
