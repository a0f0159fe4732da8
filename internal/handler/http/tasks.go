package http

import (
	"encoding/json"
	"net/http"

	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/internal/utils"
	"github.com/renivi-eth/todo-api/models"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	opts, err := parseListOptions(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid query parameters")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tasks, err := h.services.TaskService.ListTasks(ctx, ownerID, opts)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	taskID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.services.TaskService.GetTask(ctx, ownerID, taskID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	var data models.TaskData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(ctx, ownerID, data)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	taskID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var data models.TaskData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.UpdateTask(ctx, ownerID, taskID, data)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	taskID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.services.TaskService.DeleteTask(ctx, ownerID, taskID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}
