package httpapp

import (
	"net/http"

	"audiobookd/internal/http/dto"
)

// Link endpoints manage the user/subscription and audiobook/category
// associations nested under their owning resource.

func (h *Handler) AddUserSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UserSubscriptionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	link := req.ToModel(userID)
	if err := h.Store.AddUserSubscription(r.Context(), link); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, link)
}

func (h *Handler) ListUserSubscriptions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	// Resolve the user first so an unknown id is a 404, not an empty list.
	if _, err := h.Store.GetUser(r.Context(), userID); err != nil {
		h.respondError(w, r, err)
		return
	}

	links, err := h.Store.ListUserSubscriptions(r.Context(), userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, links)
}

func (h *Handler) RemoveUserSubscription(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}
	subscriptionID, ok := h.urlID(w, r, "subscriptionID")
	if !ok {
		return
	}

	if err := h.Store.RemoveUserSubscription(r.Context(), userID, subscriptionID); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) AddAudiobookCategory(w http.ResponseWriter, r *http.Request) {
	audiobookID, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	var req dto.AudiobookCategoryRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.validationFailed(w, errs)
		return
	}

	link := req.ToModel(audiobookID)
	if err := h.Store.AddAudiobookCategory(r.Context(), link); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, link)
}

func (h *Handler) ListAudiobookCategories(w http.ResponseWriter, r *http.Request) {
	audiobookID, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	if _, err := h.Store.GetAudiobook(r.Context(), audiobookID); err != nil {
		h.respondError(w, r, err)
		return
	}

	categories, err := h.Store.ListAudiobookCategories(r.Context(), audiobookID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, categories)
}

func (h *Handler) RemoveAudiobookCategory(w http.ResponseWriter, r *http.Request) {
	audiobookID, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}
	categoryID, ok := h.urlID(w, r, "categoryID")
	if !ok {
		return
	}

	if err := h.Store.RemoveAudiobookCategory(r.Context(), audiobookID, categoryID); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) ListCategoryAudiobooks(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := h.urlID(w, r, "id")
	if !ok {
		return
	}

	if _, err := h.Store.GetCategory(r.Context(), categoryID); err != nil {
		h.respondError(w, r, err)
		return
	}

	books, err := h.Store.ListCategoryAudiobooks(r.Context(), categoryID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, books)
}
