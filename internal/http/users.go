package httpapp

import (
	"net/http"

	"audiobookd/internal/http/dto"
)

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	user := req.ToModel()
	if err := h.Store.CreateUser(r.Context(), user); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.Logger.WithEntity("user", user.UserID).Info("user created")
	h.respondJSON(w, http.StatusCreated, dto.NewUserResponse(user))
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit := h.listRange(r)
	users, err := h.Store.ListUsers(r.Context(), skip, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, dto.NewUserListResponse(users))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.Store.GetUser(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UserUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	user, err := h.Store.UpdateUser(r.Context(), id, req.ToUpdates())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, dto.NewUserResponse(user))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.Store.DeleteUser(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.Logger.WithEntity("user", id).Info("user deleted")
	h.respondJSON(w, http.StatusOK, dto.NewUserResponse(user))
}
