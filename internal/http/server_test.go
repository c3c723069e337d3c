package httpapp

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"audiobookd/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := store.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewHandler(db)
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

// do sends a JSON request and returns the status plus decoded body.
// The body is nil for empty responses, a map for objects, a slice for
// arrays.
func do(t *testing.T, ts *httptest.Server, method, path string, body any) (int, any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded any
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &decoded))
	}
	return resp.StatusCode, decoded
}

func obj(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	require.True(t, ok, "expected JSON object, got %T", v)
	return m
}

func list(t *testing.T, v any) []any {
	t.Helper()
	l, ok := v.([]any)
	require.True(t, ok, "expected JSON array, got %T", v)
	return l
}

func createAuthor(t *testing.T, ts *httptest.Server, name string) int {
	t.Helper()
	status, body := do(t, ts, http.MethodPost, "/authors", map[string]any{"name": name})
	require.Equal(t, http.StatusCreated, status)
	return int(obj(t, body)["author_id"].(float64))
}

func createUser(t *testing.T, ts *httptest.Server, username string) int {
	t.Helper()
	status, body := do(t, ts, http.MethodPost, "/users", map[string]any{
		"username": username,
		"name":     "Test User",
		"email":    username + "@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, status)
	return int(obj(t, body)["user_id"].(float64))
}

func createAudiobook(t *testing.T, ts *httptest.Server, title string, authorID int) int {
	t.Helper()
	status, body := do(t, ts, http.MethodPost, "/audiobooks", map[string]any{
		"title":     title,
		"author_id": authorID,
		"duration":  3600,
	})
	require.Equal(t, http.StatusCreated, status)
	return int(obj(t, body)["audiobook_id"].(float64))
}
