package httpapp

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSubscriptionEchoesFields(t *testing.T) {
	ts := newTestServer(t)

	status, body := do(t, ts, http.MethodPost, "/subscriptions", map[string]any{
		"name":          "Monthly Plan",
		"price":         9.99,
		"duration_days": 30,
	})
	require.Equal(t, http.StatusCreated, status)

	sub := obj(t, body)
	assert.Equal(t, "Monthly Plan", sub["name"])
	assert.Equal(t, 9.99, sub["price"])
	assert.Equal(t, float64(30), sub["duration_days"])
	assert.Equal(t, float64(1), sub["subscription_id"])
	assert.NotEmpty(t, sub["created_at"])
}

func TestUserResponseHidesCredentials(t *testing.T) {
	ts := newTestServer(t)

	status, body := do(t, ts, http.MethodPost, "/users", map[string]any{
		"username": "alice",
		"name":     "Alice Smith",
		"email":    "alice@example.com",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusCreated, status)

	user := obj(t, body)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "name")
}

func TestGetMissingCategory(t *testing.T) {
	ts := newTestServer(t)

	status, body := do(t, ts, http.MethodGet, "/categories/99999", nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Category not found", obj(t, body)["error"])
}

func TestInvalidIDIsBadRequest(t *testing.T) {
	ts := newTestServer(t)

	status, _ := do(t, ts, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.Client().Post(ts.URL+"/users", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateUserMissingEmail(t *testing.T) {
	ts := newTestServer(t)

	status, body := do(t, ts, http.MethodPost, "/users", map[string]any{
		"username": "bob",
		"name":     "Bob",
		"password": "pw",
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, obj(t, body)["error"], "email")
}

func TestDuplicateUsernameConflict(t *testing.T) {
	ts := newTestServer(t)

	createUser(t, ts, "alice")
	status, _ := do(t, ts, http.MethodPost, "/users", map[string]any{
		"username": "alice",
		"name":     "Other Alice",
		"email":    "other@example.com",
		"password": "pw",
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestAudiobookEmbedsAuthor(t *testing.T) {
	ts := newTestServer(t)

	authorID := createAuthor(t, ts, "Ursula K. Le Guin")
	bookID := createAudiobook(t, ts, "The Dispossessed", authorID)

	status, body := do(t, ts, http.MethodGet, fmt.Sprintf("/audiobooks/%d", bookID), nil)
	require.Equal(t, http.StatusOK, status)

	book := obj(t, body)
	assert.Equal(t, "The Dispossessed", book["title"])
	author := obj(t, book["author"])
	assert.Equal(t, "Ursula K. Le Guin", author["name"])
	// No narrator was set
	assert.NotContains(t, book, "narrator")

	status, body = do(t, ts, http.MethodGet, "/audiobooks", nil)
	require.Equal(t, http.StatusOK, status)
	books := list(t, body)
	require.Len(t, books, 1)
	assert.Contains(t, obj(t, books[0]), "author")
}

func TestCreateAudiobookUnknownAuthor(t *testing.T) {
	ts := newTestServer(t)

	status, _ := do(t, ts, http.MethodPost, "/audiobooks", map[string]any{
		"title":     "Orphan",
		"author_id": 12345,
		"duration":  60,
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUpdateAuthorPartialAndNull(t *testing.T) {
	ts := newTestServer(t)

	status, body := do(t, ts, http.MethodPost, "/authors", map[string]any{
		"name": "Octavia Butler",
		"bio":  "Science fiction writer",
	})
	require.Equal(t, http.StatusCreated, status)
	id := int(obj(t, body)["author_id"].(float64))

	// Omitted bio stays put
	status, body = do(t, ts, http.MethodPut, fmt.Sprintf("/authors/%d", id), map[string]any{
		"name": "O. E. Butler",
	})
	require.Equal(t, http.StatusOK, status)
	author := obj(t, body)
	assert.Equal(t, "O. E. Butler", author["name"])
	assert.Equal(t, "Science fiction writer", author["bio"])

	// Explicit null clears it
	status, body = do(t, ts, http.MethodPut, fmt.Sprintf("/authors/%d", id), map[string]any{
		"bio": nil,
	})
	require.Equal(t, http.StatusOK, status)
	author = obj(t, body)
	assert.Equal(t, "O. E. Butler", author["name"])
	assert.NotContains(t, author, "bio")
}

func TestUpdateRejectsNullRequiredField(t *testing.T) {
	ts := newTestServer(t)
	id := createAuthor(t, ts, "Anonymous")

	status, body := do(t, ts, http.MethodPut, fmt.Sprintf("/authors/%d", id), map[string]any{
		"name": nil,
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, obj(t, body)["error"], "name")
}

func TestDeleteReturnsRecordThenGone(t *testing.T) {
	ts := newTestServer(t)

	status, body := do(t, ts, http.MethodPost, "/categories", map[string]any{"name": "Horror"})
	require.Equal(t, http.StatusCreated, status)
	id := int(obj(t, body)["category_id"].(float64))

	status, body = do(t, ts, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Horror", obj(t, body)["name"])

	status, _ = do(t, ts, http.MethodGet, fmt.Sprintf("/categories/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDeleteAuthorInUseConflict(t *testing.T) {
	ts := newTestServer(t)

	authorID := createAuthor(t, ts, "Busy Author")
	createAudiobook(t, ts, "In Print", authorID)

	status, _ := do(t, ts, http.MethodDelete, fmt.Sprintf("/authors/%d", authorID), nil)
	assert.Equal(t, http.StatusConflict, status)
}

func TestNarratorDeleteNotRouted(t *testing.T) {
	ts := newTestServer(t)

	status, _ := do(t, ts, http.MethodDelete, "/narrators/1", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, status)
}

func TestRatingOutOfRange(t *testing.T) {
	ts := newTestServer(t)

	userID := createUser(t, ts, "critic")
	authorID := createAuthor(t, ts, "An Author")
	bookID := createAudiobook(t, ts, "Rated", authorID)

	status, body := do(t, ts, http.MethodPost, "/ratings", map[string]any{
		"user_id":      userID,
		"audiobook_id": bookID,
		"rating":       6,
	})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, obj(t, body)["error"], "rating")

	status, _ = do(t, ts, http.MethodPost, "/ratings", map[string]any{
		"user_id":      userID,
		"audiobook_id": bookID,
		"rating":       5,
	})
	assert.Equal(t, http.StatusCreated, status)
}

func TestListPagination(t *testing.T) {
	ts := newTestServer(t)

	for i := 0; i < 12; i++ {
		status, _ := do(t, ts, http.MethodPost, "/categories", map[string]any{
			"name": fmt.Sprintf("Genre %02d", i),
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := do(t, ts, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, list(t, body), 10)

	status, body = do(t, ts, http.MethodGet, "/categories?skip=10&limit=10", nil)
	require.Equal(t, http.StatusOK, status)
	page := list(t, body)
	require.Len(t, page, 2)
	assert.Equal(t, "Genre 10", obj(t, page[0])["name"])
}

func TestEmptyListsSerializeAsArrays(t *testing.T) {
	ts := newTestServer(t)

	paths := []string{
		"/users", "/subscriptions", "/authors", "/narrators",
		"/audiobooks", "/chapters", "/categories", "/listening_histories",
		"/bookmarks", "/reviews", "/ratings", "/purchases",
	}
	for _, path := range paths {
		status, body := do(t, ts, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, status, path)
		assert.Empty(t, list(t, body), path)
	}

	// Nested lists behave the same for owners with no rows yet
	userID := createUser(t, ts, "fresh")
	status, body := do(t, ts, http.MethodGet, fmt.Sprintf("/users/%d/subscriptions", userID), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, list(t, body))

	authorID := createAuthor(t, ts, "An Author")
	bookID := createAudiobook(t, ts, "Untagged", authorID)
	for _, path := range []string{
		fmt.Sprintf("/audiobooks/%d/categories", bookID),
		fmt.Sprintf("/audiobooks/%d/chapters", bookID),
	} {
		status, body = do(t, ts, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, status, path)
		assert.Empty(t, list(t, body), path)
	}
}

func TestAudiobookChaptersRoute(t *testing.T) {
	ts := newTestServer(t)

	authorID := createAuthor(t, ts, "An Author")
	bookID := createAudiobook(t, ts, "Chaptered", authorID)

	for _, pos := range []int{2, 1} {
		status, _ := do(t, ts, http.MethodPost, "/chapters", map[string]any{
			"audiobook_id": bookID,
			"duration":     60,
			"position":     pos,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := do(t, ts, http.MethodGet, fmt.Sprintf("/audiobooks/%d/chapters", bookID), nil)
	require.Equal(t, http.StatusOK, status)
	chapters := list(t, body)
	require.Len(t, chapters, 2)
	assert.Equal(t, float64(1), obj(t, chapters[0])["position"])
	assert.Equal(t, float64(2), obj(t, chapters[1])["position"])

	status, _ = do(t, ts, http.MethodGet, "/audiobooks/9999/chapters", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListeningHistoryLifecycle(t *testing.T) {
	ts := newTestServer(t)

	userID := createUser(t, ts, "listener")
	authorID := createAuthor(t, ts, "An Author")
	bookID := createAudiobook(t, ts, "Long Book", authorID)

	status, body := do(t, ts, http.MethodPost, "/listening_histories", map[string]any{
		"user_id":      userID,
		"audiobook_id": bookID,
		"started_at":   "2026-03-10T08:00:00Z",
	})
	require.Equal(t, http.StatusCreated, status)
	history := obj(t, body)
	assert.NotContains(t, history, "finished_at")
	id := int(history["history_id"].(float64))

	status, body = do(t, ts, http.MethodPut, fmt.Sprintf("/listening_histories/%d", id), map[string]any{
		"finished_at": "2026-03-10T10:00:00Z",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, obj(t, body), "finished_at")
}
