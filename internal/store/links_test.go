package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audiobookd/internal/domain"
)

func TestUserSubscriptionLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "subscriber")
	sub := seedSubscription(t, db, "Monthly Plan")

	link := &domain.UserSubscription{
		UserID:         user.UserID,
		SubscriptionID: sub.SubscriptionID,
		StartDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.AddUserSubscription(ctx, link))

	links, err := db.ListUserSubscriptions(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, sub.SubscriptionID, links[0].SubscriptionID)

	require.NoError(t, db.RemoveUserSubscription(ctx, user.UserID, sub.SubscriptionID))

	links, err = db.ListUserSubscriptions(ctx, user.UserID)
	require.NoError(t, err)
	assert.Empty(t, links)

	// Second removal has nothing to delete
	err = db.RemoveUserSubscription(ctx, user.UserID, sub.SubscriptionID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAddUserSubscriptionUnknownUser(t *testing.T) {
	db := newTestDB(t)
	sub := seedSubscription(t, db, "Plan")

	link := &domain.UserSubscription{
		UserID:         9999,
		SubscriptionID: sub.SubscriptionID,
		StartDate:      time.Now().UTC(),
		EndDate:        time.Now().UTC().AddDate(0, 1, 0),
	}
	err := db.AddUserSubscription(context.Background(), link)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestDuplicateUserSubscription(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := seedUser(t, db, "subscriber")
	sub := seedSubscription(t, db, "Plan")

	link := &domain.UserSubscription{
		UserID:         user.UserID,
		SubscriptionID: sub.SubscriptionID,
		StartDate:      time.Now().UTC(),
		EndDate:        time.Now().UTC().AddDate(0, 1, 0),
	}
	require.NoError(t, db.AddUserSubscription(ctx, link))

	err := db.AddUserSubscription(ctx, link)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestAudiobookCategoryLinks(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	author := seedAuthor(t, db, "An Author")
	book := seedAudiobook(t, db, "Tagged", author.AuthorID)
	scifi := seedCategory(t, db, "Sci-Fi")
	drama := seedCategory(t, db, "Drama")

	require.NoError(t, db.AddAudiobookCategory(ctx, &domain.AudiobookCategory{
		AudiobookID: book.AudiobookID, CategoryID: scifi.CategoryID,
	}))
	require.NoError(t, db.AddAudiobookCategory(ctx, &domain.AudiobookCategory{
		AudiobookID: book.AudiobookID, CategoryID: drama.CategoryID,
	}))

	categories, err := db.ListAudiobookCategories(ctx, book.AudiobookID)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Sci-Fi", categories[0].Name)

	books, err := db.ListCategoryAudiobooks(ctx, scifi.CategoryID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Tagged", books[0].Title)

	require.NoError(t, db.RemoveAudiobookCategory(ctx, book.AudiobookID, scifi.CategoryID))

	books, err = db.ListCategoryAudiobooks(ctx, scifi.CategoryID)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestAddCategoryToUnknownAudiobook(t *testing.T) {
	db := newTestDB(t)
	cat := seedCategory(t, db, "Lonely")

	err := db.AddAudiobookCategory(context.Background(), &domain.AudiobookCategory{
		AudiobookID: 777, CategoryID: cat.CategoryID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
