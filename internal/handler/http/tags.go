package http

import (
	"encoding/json"
	"net/http"

	"github.com/renivi-eth/todo-api/internal/logger"
	"github.com/renivi-eth/todo-api/internal/utils"
	"github.com/renivi-eth/todo-api/models"
)

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
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

	tags, err := h.services.TagService.ListTags(ctx, ownerID, opts)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, tags, http.StatusOK)
}

func (h *Handler) getTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	tagID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	tag, err := h.services.TagService.GetTag(ctx, ownerID, tagID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	var data models.TagData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	tag, err := h.services.TagService.CreateTag(ctx, ownerID, data)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusCreated)
}

func (h *Handler) updateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	tagID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var data models.TagData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	tag, err := h.services.TagService.UpdateTag(ctx, ownerID, tagID, data)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}

func (h *Handler) deleteTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	tagID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	tag, err := h.services.TagService.DeleteTag(ctx, ownerID, tagID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, tag, http.StatusOK)
}
