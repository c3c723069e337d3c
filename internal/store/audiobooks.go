package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"audiobookd/internal/domain"
)

var audiobookColumns = map[string]bool{
	"title":        true,
	"author_id":    true,
	"narrator_id":  true,
	"duration":     true,
	"description":  true,
	"release_date": true,
}

// AudiobookDetail is an audiobook with its author and optional narrator
// resolved, as the read surface presents it.
type AudiobookDetail struct {
	domain.Audiobook
	Author   *domain.Author   `json:"author"`
	Narrator *domain.Narrator `json:"narrator,omitempty"`
}

func (db *DB) CreateAudiobook(ctx context.Context, book *domain.Audiobook) error {
	book.CreatedAt = time.Now().UTC()

	query := `INSERT INTO audiobooks (title, author_id, narrator_id, duration, description, release_date, created_at)
		VALUES (:title, :author_id, :narrator_id, :duration, :description, :release_date, :created_at)`

	result, err := db.NamedExecContext(ctx, query, book)
	if err != nil {
		return classifyWrite(err, "failed to create audiobook")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ErrStorage.WithMessage("failed to read audiobook id").WithCause(err)
	}
	book.AudiobookID = int(id)
	return nil
}

func (db *DB) GetAudiobook(ctx context.Context, id int) (*domain.Audiobook, error) {
	var book domain.Audiobook
	err := db.GetContext(ctx, &book, `SELECT * FROM audiobooks WHERE audiobook_id = ?`, id)
	if err != nil {
		return nil, classifyGet(err, "Audiobook")
	}
	return &book, nil
}

// GetAudiobookDetail loads an audiobook with its author and narrator.
func (db *DB) GetAudiobookDetail(ctx context.Context, id int) (*AudiobookDetail, error) {
	book, err := db.GetAudiobook(ctx, id)
	if err != nil {
		return nil, err
	}
	return db.resolveRefs(ctx, book)
}

func (db *DB) ListAudiobooks(ctx context.Context, skip, limit int) ([]*domain.Audiobook, error) {
	skip, limit = normalizeRange(skip, limit)

	books := []*domain.Audiobook{}
	err := db.SelectContext(ctx, &books, `SELECT * FROM audiobooks ORDER BY audiobook_id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list audiobooks").WithCause(err)
	}
	return books, nil
}

// ListAudiobookDetails lists audiobooks with authors and narrators
// resolved in one extra query per side rather than per row.
func (db *DB) ListAudiobookDetails(ctx context.Context, skip, limit int) ([]*AudiobookDetail, error) {
	books, err := db.ListAudiobooks(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	authors, err := db.authorsByID(ctx, books)
	if err != nil {
		return nil, err
	}
	narrators, err := db.narratorsByID(ctx, books)
	if err != nil {
		return nil, err
	}

	details := make([]*AudiobookDetail, 0, len(books))
	for _, book := range books {
		d := &AudiobookDetail{Audiobook: *book, Author: authors[book.AuthorID]}
		if book.NarratorID != nil {
			d.Narrator = narrators[*book.NarratorID]
		}
		details = append(details, d)
	}
	return details, nil
}

func (db *DB) UpdateAudiobook(ctx context.Context, id int, updates map[string]any) (*domain.Audiobook, error) {
	if err := db.applyUpdate(ctx, "audiobooks", "audiobook_id", id, "Audiobook", updates, audiobookColumns); err != nil {
		return nil, err
	}
	return db.GetAudiobook(ctx, id)
}

func (db *DB) DeleteAudiobook(ctx context.Context, id int) (*domain.Audiobook, error) {
	book, err := db.GetAudiobook(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM audiobooks WHERE audiobook_id = ?`, id); err != nil {
		return nil, classifyDelete(err, "failed to delete audiobook")
	}
	return book, nil
}

func (db *DB) resolveRefs(ctx context.Context, book *domain.Audiobook) (*AudiobookDetail, error) {
	detail := &AudiobookDetail{Audiobook: *book}

	author, err := db.GetAuthor(ctx, book.AuthorID)
	if err != nil {
		return nil, err
	}
	detail.Author = author

	if book.NarratorID != nil {
		narrator, err := db.GetNarrator(ctx, *book.NarratorID)
		if err != nil {
			return nil, err
		}
		detail.Narrator = narrator
	}
	return detail, nil
}

func (db *DB) authorsByID(ctx context.Context, books []*domain.Audiobook) (map[int]*domain.Author, error) {
	ids := make([]int, 0, len(books))
	seen := make(map[int]bool)
	for _, b := range books {
		if !seen[b.AuthorID] {
			seen[b.AuthorID] = true
			ids = append(ids, b.AuthorID)
		}
	}
	if len(ids) == 0 {
		return map[int]*domain.Author{}, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM authors WHERE author_id IN (?)`, ids)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to load authors").WithCause(err)
	}

	var authors []*domain.Author
	if err := db.SelectContext(ctx, &authors, query, args...); err != nil {
		return nil, ErrStorage.WithMessage("failed to load authors").WithCause(err)
	}

	byID := make(map[int]*domain.Author, len(authors))
	for _, a := range authors {
		byID[a.AuthorID] = a
	}
	return byID, nil
}

func (db *DB) narratorsByID(ctx context.Context, books []*domain.Audiobook) (map[int]*domain.Narrator, error) {
	ids := make([]int, 0, len(books))
	seen := make(map[int]bool)
	for _, b := range books {
		if b.NarratorID != nil && !seen[*b.NarratorID] {
			seen[*b.NarratorID] = true
			ids = append(ids, *b.NarratorID)
		}
	}
	if len(ids) == 0 {
		return map[int]*domain.Narrator{}, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM narrators WHERE narrator_id IN (?)`, ids)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to load narrators").WithCause(err)
	}

	var narrators []*domain.Narrator
	if err := db.SelectContext(ctx, &narrators, query, args...); err != nil {
		return nil, ErrStorage.WithMessage("failed to load narrators").WithCause(err)
	}

	byID := make(map[int]*domain.Narrator, len(narrators))
	for _, n := range narrators {
		byID[n.NarratorID] = n
	}
	return byID, nil
}
