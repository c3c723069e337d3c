package store

import (
	"context"
	"time"

	"audiobookd/internal/domain"
)

// Authors and narrators share a shape but stay separate tables; an
// author and a narrator with the same name are different people as far
// as the catalog is concerned.

var contributorColumns = map[string]bool{
	"name": true,
	"bio":  true,
}

func (db *DB) CreateAuthor(ctx context.Context, author *domain.Author) error {
	author.CreatedAt = time.Now().UTC()

	query := `INSERT INTO authors (name, bio, created_at) VALUES (:name, :bio, :created_at)`

	result, err := db.NamedExecContext(ctx, query, author)
	if err != nil {
		return classifyWrite(err, "failed to create author")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ErrStorage.WithMessage("failed to read author id").WithCause(err)
	}
	author.AuthorID = int(id)
	return nil
}

func (db *DB) GetAuthor(ctx context.Context, id int) (*domain.Author, error) {
	var author domain.Author
	err := db.GetContext(ctx, &author, `SELECT * FROM authors WHERE author_id = ?`, id)
	if err != nil {
		return nil, classifyGet(err, "Author")
	}
	return &author, nil
}

func (db *DB) ListAuthors(ctx context.Context, skip, limit int) ([]*domain.Author, error) {
	skip, limit = normalizeRange(skip, limit)

	authors := []*domain.Author{}
	err := db.SelectContext(ctx, &authors, `SELECT * FROM authors ORDER BY author_id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list authors").WithCause(err)
	}
	return authors, nil
}

func (db *DB) UpdateAuthor(ctx context.Context, id int, updates map[string]any) (*domain.Author, error) {
	if err := db.applyUpdate(ctx, "authors", "author_id", id, "Author", updates, contributorColumns); err != nil {
		return nil, err
	}
	return db.GetAuthor(ctx, id)
}

func (db *DB) DeleteAuthor(ctx context.Context, id int) (*domain.Author, error) {
	author, err := db.GetAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM authors WHERE author_id = ?`, id); err != nil {
		return nil, classifyDelete(err, "failed to delete author")
	}
	return author, nil
}

func (db *DB) CreateNarrator(ctx context.Context, narrator *domain.Narrator) error {
	narrator.CreatedAt = time.Now().UTC()

	query := `INSERT INTO narrators (name, bio, created_at) VALUES (:name, :bio, :created_at)`

	result, err := db.NamedExecContext(ctx, query, narrator)
	if err != nil {
		return classifyWrite(err, "failed to create narrator")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ErrStorage.WithMessage("failed to read narrator id").WithCause(err)
	}
	narrator.NarratorID = int(id)
	return nil
}

func (db *DB) GetNarrator(ctx context.Context, id int) (*domain.Narrator, error) {
	var narrator domain.Narrator
	err := db.GetContext(ctx, &narrator, `SELECT * FROM narrators WHERE narrator_id = ?`, id)
	if err != nil {
		return nil, classifyGet(err, "Narrator")
	}
	return &narrator, nil
}

func (db *DB) ListNarrators(ctx context.Context, skip, limit int) ([]*domain.Narrator, error) {
	skip, limit = normalizeRange(skip, limit)

	narrators := []*domain.Narrator{}
	err := db.SelectContext(ctx, &narrators, `SELECT * FROM narrators ORDER BY narrator_id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list narrators").WithCause(err)
	}
	return narrators, nil
}

func (db *DB) UpdateNarrator(ctx context.Context, id int, updates map[string]any) (*domain.Narrator, error) {
	if err := db.applyUpdate(ctx, "narrators", "narrator_id", id, "Narrator", updates, contributorColumns); err != nil {
		return nil, err
	}
	return db.GetNarrator(ctx, id)
}

// DeleteNarrator exists for contract symmetry even though the HTTP
// surface does not expose it.
func (db *DB) DeleteNarrator(ctx context.Context, id int) (*domain.Narrator, error) {
	narrator, err := db.GetNarrator(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM narrators WHERE narrator_id = ?`, id); err != nil {
		return nil, classifyDelete(err, "failed to delete narrator")
	}
	return narrator, nil
}
