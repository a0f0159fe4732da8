package http

import (
	"errors"
	"net/http"

	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/internal/service"
	"github.com/renivi-eth/todo-api/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrWrongPassword:             http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid:   http.StatusUnauthorized,
	service.ErrValidationEmail:           http.StatusBadRequest,
	service.ErrValidationPassword:        http.StatusBadRequest,
	service.ErrValidationTaskName:        http.StatusBadRequest,
	service.ErrValidationTaskDescription: http.StatusBadRequest,
	service.ErrValidationTaskState:       http.StatusBadRequest,
	service.ErrValidationTagName:         http.StatusBadRequest,
	service.ErrValidationSortProperty:    http.StatusBadRequest,
	service.ErrValidationSortDirection:   http.StatusBadRequest,
	service.ErrValidationLimit:           http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrTaskNotFound:       http.StatusNotFound,
	store.ErrTagNotFound:        http.StatusNotFound,
	store.ErrTagNameTaken:       http.StatusConflict,
	store.ErrRelationExists:     http.StatusConflict,
	store.ErrRelationNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// mapError resolves err (or anything it wraps) against [errorStatusMap] and
// returns the HTTP status with a stable, kind-specific message. Unrecognised
// errors collapse to 500 with the generic status text so internal details
// never leak to clients.
func mapError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// respondError logs the failure and writes the mapped status and message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg(message)
	http.Error(w, message, status)
}
