package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/internal/utils"
	"github.com/renivi-eth/todo-api/models"
)

// ownerFromContext reads the authenticated user id placed in the context by
// the auth middleware. A missing value means the handler was reached without
// the middleware; the request is rejected with 401 and ok=false is returned.
func ownerFromContext(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}

	return ownerID, true
}

// pathUUID extracts the named chi URL parameter and validates that it is a
// well-formed UUID. On failure it writes 400 and returns ok=false.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := chi.URLParam(r, name)
	if _, err := uuid.Parse(raw); err != nil {
		logger.FromRequest(r).Err(err).Str("param", name).Msg("invalid uuid in path")
		http.Error(w, name+" must be a valid UUID", http.StatusBadRequest)
		return "", false
	}

	return raw, true
}

// parseListOptions reads the optional state/sortProperty/sortDirection/limit
// query parameters. Only the limit needs syntactic parsing here; semantic
// validation of the values happens at the service layer.
func parseListOptions(r *http.Request) (models.ListOptions, error) {
	query := r.URL.Query()

	opts := models.ListOptions{
		State:         models.TaskState(query.Get("state")),
		SortProperty:  query.Get("sortProperty"),
		SortDirection: query.Get("sortDirection"),
	}

	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			return models.ListOptions{}, errors.New("limit must be a number")
		}
		opts.Limit = limit
	}

	return opts, nil
}
