package httpapp

import (
	"net/http"

	"audiobookd/internal/http/dto"
)

func (h *Handler) CreateListeningHistory(w http.ResponseWriter, r *http.Request) {
	var req dto.ListeningHistoryCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	history := req.ToModel()
	if err := h.Store.CreateListeningHistory(r.Context(), history); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, history)
}

func (h *Handler) ListListeningHistories(w http.ResponseWriter, r *http.Request) {
	skip, limit := h.listRange(r)
	histories, err := h.Store.ListListeningHistories(r.Context(), skip, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, histories)
}

func (h *Handler) GetListeningHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	history, err := h.Store.GetListeningHistory(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, history)
}

func (h *Handler) UpdateListeningHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	var req dto.ListeningHistoryUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	history, err := h.Store.UpdateListeningHistory(r.Context(), id, req.ToUpdates())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, history)
}

func (h *Handler) DeleteListeningHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	history, err := h.Store.DeleteListeningHistory(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, history)
}
