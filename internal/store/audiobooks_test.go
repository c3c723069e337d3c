package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audiobookd/internal/domain"
)

func TestAudiobookDetailResolvesRefs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := seedAuthor(t, db, "Ursula K. Le Guin")
	narrator := seedNarrator(t, db, "Kate Reading")

	book := &domain.Audiobook{
		Title:      "The Dispossessed",
		AuthorID:   author.AuthorID,
		NarratorID: &narrator.NarratorID,
		Duration:   48600,
	}
	require.NoError(t, db.CreateAudiobook(ctx, book))

	detail, err := db.GetAudiobookDetail(ctx, book.AudiobookID)
	require.NoError(t, err)
	require.NotNil(t, detail.Author)
	assert.Equal(t, "Ursula K. Le Guin", detail.Author.Name)
	require.NotNil(t, detail.Narrator)
	assert.Equal(t, "Kate Reading", detail.Narrator.Name)
}

func TestAudiobookDetailWithoutNarrator(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := seedAuthor(t, db, "Octavia Butler")
	book := seedAudiobook(t, db, "Kindred", author.AuthorID)

	detail, err := db.GetAudiobookDetail(ctx, book.AudiobookID)
	require.NoError(t, err)
	require.NotNil(t, detail.Author)
	assert.Nil(t, detail.Narrator)
}

func TestListAudiobookDetails(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := seedAuthor(t, db, "Shared Author")
	narrator := seedNarrator(t, db, "Shared Narrator")
	for i := 0; i < 3; i++ {
		book := &domain.Audiobook{
			Title:      fmt.Sprintf("Book %d", i),
			AuthorID:   author.AuthorID,
			NarratorID: &narrator.NarratorID,
			Duration:   100,
		}
		require.NoError(t, db.CreateAudiobook(ctx, book))
	}

	details, err := db.ListAudiobookDetails(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, details, 3)
	for _, d := range details {
		require.NotNil(t, d.Author)
		assert.Equal(t, "Shared Author", d.Author.Name)
		require.NotNil(t, d.Narrator)
	}
}

func TestCreateAudiobookUnknownAuthor(t *testing.T) {
	db := newTestDB(t)

	book := &domain.Audiobook{Title: "Orphan", AuthorID: 12345, Duration: 60}
	err := db.CreateAudiobook(context.Background(), book)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestDeleteAuthorWithBooks(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := seedAuthor(t, db, "Busy Author")
	seedAudiobook(t, db, "In Print", author.AuthorID)

	_, err := db.DeleteAuthor(ctx, author.AuthorID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))

	// Author is still there
	_, err = db.GetAuthor(ctx, author.AuthorID)
	require.NoError(t, err)
}

func TestUpdateAudiobookClearNarrator(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := seedAuthor(t, db, "An Author")
	narrator := seedNarrator(t, db, "A Narrator")
	book := &domain.Audiobook{
		Title:      "Voiced",
		AuthorID:   author.AuthorID,
		NarratorID: &narrator.NarratorID,
		Duration:   100,
	}
	require.NoError(t, db.CreateAudiobook(ctx, book))

	// Explicit null clears the column
	updated, err := db.UpdateAudiobook(ctx, book.AudiobookID, map[string]any{"narrator_id": nil})
	require.NoError(t, err)
	assert.Nil(t, updated.NarratorID)
	assert.Equal(t, "Voiced", updated.Title)
}

func TestListAudiobookChaptersOrdered(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := seedAuthor(t, db, "An Author")
	book := seedAudiobook(t, db, "Chaptered", author.AuthorID)

	for _, pos := range []int{3, 1, 2} {
		ch := &domain.Chapter{AudiobookID: book.AudiobookID, Duration: 60, Position: pos}
		require.NoError(t, db.CreateChapter(ctx, ch))
	}

	chapters, err := db.ListAudiobookChapters(ctx, book.AudiobookID)
	require.NoError(t, err)
	require.Len(t, chapters, 3)
	assert.Equal(t, 1, chapters[0].Position)
	assert.Equal(t, 2, chapters[1].Position)
	assert.Equal(t, 3, chapters[2].Position)
}
