package httpapp

import (
	"net/http"

	"audiobookd/internal/http/dto"
)

func (h *Handler) CreateChapter(w http.ResponseWriter, r *http.Request) {
	var req dto.ChapterCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	chapter := req.ToModel()
	if err := h.Store.CreateChapter(r.Context(), chapter); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, chapter)
}

func (h *Handler) ListChapters(w http.ResponseWriter, r *http.Request) {
	skip, limit := h.listRange(r)
	chapters, err := h.Store.ListChapters(r.Context(), skip, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, chapters)
}

func (h *Handler) GetChapter(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	chapter, err := h.Store.GetChapter(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, chapter)
}

func (h *Handler) UpdateChapter(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	var req dto.ChapterUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	chapter, err := h.Store.UpdateChapter(r.Context(), id, req.ToUpdates())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, chapter)
}

func (h *Handler) DeleteChapter(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	chapter, err := h.Store.DeleteChapter(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, chapter)
}
