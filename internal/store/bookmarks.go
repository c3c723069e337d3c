package store

import (
	"context"
	"time"

	"audiobookd/internal/domain"
)

var bookmarkColumns = map[string]bool{
	"user_id":      true,
	"audiobook_id": true,
	"chapter_id":   true,
	"position":     true,
}

func (db *DB) CreateBookmark(ctx context.Context, bookmark *domain.Bookmark) error {
	bookmark.CreatedAt = time.Now().UTC()

	query := `INSERT INTO bookmarks (user_id, audiobook_id, chapter_id, position, created_at)
		VALUES (:user_id, :audiobook_id, :chapter_id, :position, :created_at)`

	result, err := db.NamedExecContext(ctx, query, bookmark)
	if err != nil {
		return classifyWrite(err, "failed to create bookmark")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ErrStorage.WithMessage("failed to read bookmark id").WithCause(err)
	}
	bookmark.BookmarkID = int(id)
	return nil
}

func (db *DB) GetBookmark(ctx context.Context, id int) (*domain.Bookmark, error) {
	var bookmark domain.Bookmark
	err := db.GetContext(ctx, &bookmark, `SELECT * FROM bookmarks WHERE bookmark_id = ?`, id)
	if err != nil {
		return nil, classifyGet(err, "Bookmark")
	}
	return &bookmark, nil
}

func (db *DB) ListBookmarks(ctx context.Context, skip, limit int) ([]*domain.Bookmark, error) {
	skip, limit = normalizeRange(skip, limit)

	bookmarks := []*domain.Bookmark{}
	err := db.SelectContext(ctx, &bookmarks, `SELECT * FROM bookmarks ORDER BY bookmark_id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list bookmarks").WithCause(err)
	}
	return bookmarks, nil
}

func (db *DB) UpdateBookmark(ctx context.Context, id int, updates map[string]any) (*domain.Bookmark, error) {
	if err := db.applyUpdate(ctx, "bookmarks", "bookmark_id", id, "Bookmark", updates, bookmarkColumns); err != nil {
		return nil, err
	}
	return db.GetBookmark(ctx, id)
}

func (db *DB) DeleteBookmark(ctx context.Context, id int) (*domain.Bookmark, error) {
	bookmark, err := db.GetBookmark(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM bookmarks WHERE bookmark_id = ?`, id); err != nil {
		return nil, classifyDelete(err, "failed to delete bookmark")
	}
	return bookmark, nil
}
