package http

import (
	"net/http"

	"github.com/renivi-eth/todo-api/internal/utils"
)

func (h *Handler) linkTaskTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	tagID, ok := pathUUID(w, r, "tagId")
	if !ok {
		return
	}

	taskID, ok := pathUUID(w, r, "taskId")
	if !ok {
		return
	}

	relation, err := h.services.RelationService.LinkTaskTag(ctx, ownerID, taskID, tagID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, relation, http.StatusCreated)
}

func (h *Handler) listTagsForTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	taskID, ok := pathUUID(w, r, "taskId")
	if !ok {
		return
	}

	tags, err := h.services.RelationService.ListTagsForTask(ctx, ownerID, taskID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, tags, http.StatusOK)
}

func (h *Handler) unlinkTaskTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ownerID, ok := ownerFromContext(w, r)
	if !ok {
		return
	}

	tagID, ok := pathUUID(w, r, "tagId")
	if !ok {
		return
	}

	taskID, ok := pathUUID(w, r, "taskId")
	if !ok {
		return
	}

	relation, err := h.services.RelationService.UnlinkTaskTag(ctx, ownerID, taskID, tagID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, relation, http.StatusOK)
}
