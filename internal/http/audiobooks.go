package httpapp

import (
	"net/http"

	"audiobookd/internal/http/dto"
)

// Audiobook reads resolve the author and optional narrator so clients get
// the full record in one round trip.

func (h *Handler) CreateAudiobook(w http.ResponseWriter, r *http.Request) {
	var req dto.AudiobookCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	book := req.ToModel()
	if err := h.Store.CreateAudiobook(r.Context(), book); err != nil {
		h.respondError(w, r, err)
		return
	}

	detail, err := h.Store.GetAudiobookDetail(r.Context(), book.AudiobookID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.Logger.WithEntity("audiobook", book.AudiobookID).Info("audiobook created")
	h.respondJSON(w, http.StatusCreated, detail)
}

func (h *Handler) ListAudiobooks(w http.ResponseWriter, r *http.Request) {
	skip, limit := h.listRange(r)
	details, err := h.Store.ListAudiobookDetails(r.Context(), skip, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, details)
}

func (h *Handler) GetAudiobook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.Store.GetAudiobookDetail(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, detail)
}

func (h *Handler) UpdateAudiobook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	var req dto.AudiobookUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	if _, err := h.Store.UpdateAudiobook(r.Context(), id, req.ToUpdates()); err != nil {
		h.respondError(w, r, err)
		return
	}

	detail, err := h.Store.GetAudiobookDetail(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, detail)
}

func (h *Handler) ListAudiobookChapters(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	// Resolve the audiobook first so an unknown id is a 404, not an
	// empty list.
	if _, err := h.Store.GetAudiobook(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	chapters, err := h.Store.ListAudiobookChapters(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, chapters)
}

func (h *Handler) DeleteAudiobook(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	book, err := h.Store.DeleteAudiobook(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.Logger.WithEntity("audiobook", id).Info("audiobook deleted")
	h.respondJSON(w, http.StatusOK, book)
}
