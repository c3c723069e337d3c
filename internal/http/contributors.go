package httpapp

import (
	"net/http"

	"audiobookd/internal/http/dto"
)

func (h *Handler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req dto.AuthorCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	author := req.ToModel()
	if err := h.Store.CreateAuthor(r.Context(), author); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, author)
}

func (h *Handler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	skip, limit := h.listRange(r)
	authors, err := h.Store.ListAuthors(r.Context(), skip, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, authors)
}

func (h *Handler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	author, err := h.Store.GetAuthor(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, author)
}

func (h *Handler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	var req dto.AuthorUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	author, err := h.Store.UpdateAuthor(r.Context(), id, req.ToUpdates())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, author)
}

func (h *Handler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	author, err := h.Store.DeleteAuthor(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, author)
}

func (h *Handler) CreateNarrator(w http.ResponseWriter, r *http.Request) {
	var req dto.NarratorCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	narrator := req.ToModel()
	if err := h.Store.CreateNarrator(r.Context(), narrator); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, narrator)
}

func (h *Handler) ListNarrators(w http.ResponseWriter, r *http.Request) {
	skip, limit := h.listRange(r)
	narrators, err := h.Store.ListNarrators(r.Context(), skip, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, narrators)
}

func (h *Handler) GetNarrator(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	narrator, err := h.Store.GetNarrator(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, narrator)
}

func (h *Handler) UpdateNarrator(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	var req dto.NarratorUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	narrator, err := h.Store.UpdateNarrator(r.Context(), id, req.ToUpdates())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, narrator)
}
