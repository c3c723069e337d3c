package httpapp

import (
	"net/http"

	"audiobookd/internal/http/dto"
)

func (h *Handler) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	var req dto.BookmarkCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	bookmark := req.ToModel()
	if err := h.Store.CreateBookmark(r.Context(), bookmark); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, bookmark)
}

func (h *Handler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	skip, limit := h.listRange(r)
	bookmarks, err := h.Store.ListBookmarks(r.Context(), skip, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, bookmarks)
}

func (h *Handler) GetBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	bookmark, err := h.Store.GetBookmark(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, bookmark)
}

func (h *Handler) UpdateBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	var req dto.BookmarkUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	bookmark, err := h.Store.UpdateBookmark(r.Context(), id, req.ToUpdates())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, bookmark)
}

func (h *Handler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	bookmark, err := h.Store.DeleteBookmark(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, bookmark)
}
