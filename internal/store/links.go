package store

import (
	"context"

	"audiobookd/internal/domain"
)

// Link rows have no identity beyond their composite key, so they get
// add/remove/list instead of the full per-entity contract.

func (db *DB) AddUserSubscription(ctx context.Context, link *domain.UserSubscription) error {
	query := `INSERT INTO user_subscriptions (user_id, subscription_id, start_date, end_date)
		VALUES (:user_id, :subscription_id, :start_date, :end_date)`

	if _, err := db.NamedExecContext(ctx, query, link); err != nil {
		return classifyWrite(err, "failed to add subscription to user")
	}
	return nil
}

func (db *DB) RemoveUserSubscription(ctx context.Context, userID, subscriptionID int) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM user_subscriptions WHERE user_id = ? AND subscription_id = ?`, userID, subscriptionID)
	if err != nil {
		return classifyDelete(err, "failed to remove subscription from user")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ErrStorage.WithMessage("failed to remove subscription from user").WithCause(err)
	}
	if rows == 0 {
		return notFound("UserSubscription")
	}
	return nil
}

// ListUserSubscriptions returns the link rows for one user in
// subscription order.
func (db *DB) ListUserSubscriptions(ctx context.Context, userID int) ([]*domain.UserSubscription, error) {
	links := []*domain.UserSubscription{}
	err := db.SelectContext(ctx, &links,
		`SELECT * FROM user_subscriptions WHERE user_id = ? ORDER BY subscription_id`, userID)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list user subscriptions").WithCause(err)
	}
	return links, nil
}

func (db *DB) AddAudiobookCategory(ctx context.Context, link *domain.AudiobookCategory) error {
	query := `INSERT INTO audiobook_categories (audiobook_id, category_id)
		VALUES (:audiobook_id, :category_id)`

	if _, err := db.NamedExecContext(ctx, query, link); err != nil {
		return classifyWrite(err, "failed to add category to audiobook")
	}
	return nil
}

func (db *DB) RemoveAudiobookCategory(ctx context.Context, audiobookID, categoryID int) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM audiobook_categories WHERE audiobook_id = ? AND category_id = ?`, audiobookID, categoryID)
	if err != nil {
		return classifyDelete(err, "failed to remove category from audiobook")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ErrStorage.WithMessage("failed to remove category from audiobook").WithCause(err)
	}
	if rows == 0 {
		return notFound("AudiobookCategory")
	}
	return nil
}

// ListAudiobookCategories resolves the categories attached to an
// audiobook.
func (db *DB) ListAudiobookCategories(ctx context.Context, audiobookID int) ([]*domain.Category, error) {
	categories := []*domain.Category{}
	err := db.SelectContext(ctx, &categories,
		`SELECT c.* FROM categories c
		JOIN audiobook_categories ac ON ac.category_id = c.category_id
		WHERE ac.audiobook_id = ?
		ORDER BY c.category_id`, audiobookID)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list audiobook categories").WithCause(err)
	}
	return categories, nil
}

// ListCategoryAudiobooks is the reverse lookup: audiobooks in a category.
func (db *DB) ListCategoryAudiobooks(ctx context.Context, categoryID int) ([]*domain.Audiobook, error) {
	books := []*domain.Audiobook{}
	err := db.SelectContext(ctx, &books,
		`SELECT a.* FROM audiobooks a
		JOIN audiobook_categories ac ON ac.audiobook_id = a.audiobook_id
		WHERE ac.category_id = ?
		ORDER BY a.audiobook_id`, categoryID)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list category audiobooks").WithCause(err)
	}
	return books, nil
}
