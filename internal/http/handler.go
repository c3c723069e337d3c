package httpapp

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"audiobookd/internal/http/dto"
	"audiobookd/internal/logger"
	"audiobookd/internal/store"
)

type Handler struct {
	Store  *store.DB
	Logger *logger.Logger
}

func NewHandler(db *store.DB) *Handler {
	return &Handler{
		Store:  db,
		Logger: logger.Default().WithComponent("http"),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("failed to encode response", "error", err)
	}
}

// respondError maps storage errors to their HTTP codes; anything else is
// a 500 with a generic body.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		if storeErr.Code >= http.StatusInternalServerError {
			h.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		}
		h.respondJSON(w, storeErr.Code, errorResponse{Error: storeErr.Message})
		return
	}

	h.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	h.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// decodeJSON reads the request body into dst, reporting 400 on malformed
// payloads. Unknown fields are ignored.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.badRequest(w, "invalid JSON payload")
		return false
	}
	return true
}

// urlID parses the named chi URL parameter as an integer id.
func (h *Handler) urlID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		h.badRequest(w, "invalid "+name)
		return 0, false
	}
	return id, true
}

func (h *Handler) validationFailed(w http.ResponseWriter, errs []dto.ValidationError) {
	h.badRequest(w, dto.ToResponse(errs))
}

func (h *Handler) listRange(r *http.Request) (int, int) {
	return dto.ParseListParams(r.URL.Query()).Range()
}
