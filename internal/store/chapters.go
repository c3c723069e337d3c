package store

import (
	"context"
	"time"

	"audiobookd/internal/domain"
)

var chapterColumns = map[string]bool{
	"audiobook_id": true,
	"title":        true,
	"duration":     true,
	"position":     true,
}

func (db *DB) CreateChapter(ctx context.Context, chapter *domain.Chapter) error {
	chapter.CreatedAt = time.Now().UTC()

	query := `INSERT INTO chapters (audiobook_id, title, duration, position, created_at)
		VALUES (:audiobook_id, :title, :duration, :position, :created_at)`

	result, err := db.NamedExecContext(ctx, query, chapter)
	if err != nil {
		return classifyWrite(err, "failed to create chapter")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ErrStorage.WithMessage("failed to read chapter id").WithCause(err)
	}
	chapter.ChapterID = int(id)
	return nil
}

func (db *DB) GetChapter(ctx context.Context, id int) (*domain.Chapter, error) {
	var chapter domain.Chapter
	err := db.GetContext(ctx, &chapter, `SELECT * FROM chapters WHERE chapter_id = ?`, id)
	if err != nil {
		return nil, classifyGet(err, "Chapter")
	}
	return &chapter, nil
}

func (db *DB) ListChapters(ctx context.Context, skip, limit int) ([]*domain.Chapter, error) {
	skip, limit = normalizeRange(skip, limit)

	chapters := []*domain.Chapter{}
	err := db.SelectContext(ctx, &chapters, `SELECT * FROM chapters ORDER BY chapter_id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list chapters").WithCause(err)
	}
	return chapters, nil
}

// ListAudiobookChapters returns the chapters of one audiobook in
// position order.
func (db *DB) ListAudiobookChapters(ctx context.Context, audiobookID int) ([]*domain.Chapter, error) {
	chapters := []*domain.Chapter{}
	err := db.SelectContext(ctx, &chapters, `SELECT * FROM chapters WHERE audiobook_id = ? ORDER BY position ASC, chapter_id ASC`, audiobookID)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list chapters").WithCause(err)
	}
	return chapters, nil
}

func (db *DB) UpdateChapter(ctx context.Context, id int, updates map[string]any) (*domain.Chapter, error) {
	if err := db.applyUpdate(ctx, "chapters", "chapter_id", id, "Chapter", updates, chapterColumns); err != nil {
		return nil, err
	}
	return db.GetChapter(ctx, id)
}

func (db *DB) DeleteChapter(ctx context.Context, id int) (*domain.Chapter, error) {
	chapter, err := db.GetChapter(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM chapters WHERE chapter_id = ?`, id); err != nil {
		return nil, classifyDelete(err, "failed to delete chapter")
	}
	return chapter, nil
}
