package store

import (
	"context"
	"time"

	"audiobookd/internal/domain"
)

var ratingColumns = map[string]bool{
	"user_id":      true,
	"audiobook_id": true,
	"rating":       true,
}

func (db *DB) CreateRating(ctx context.Context, rating *domain.Rating) error {
	rating.CreatedAt = time.Now().UTC()

	query := `INSERT INTO ratings (user_id, audiobook_id, rating, created_at)
		VALUES (:user_id, :audiobook_id, :rating, :created_at)`

	result, err := db.NamedExecContext(ctx, query, rating)
	if err != nil {
		return classifyWrite(err, "failed to create rating")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ErrStorage.WithMessage("failed to read rating id").WithCause(err)
	}
	rating.RatingID = int(id)
	return nil
}

func (db *DB) GetRating(ctx context.Context, id int) (*domain.Rating, error) {
	var rating domain.Rating
	err := db.GetContext(ctx, &rating, `SELECT * FROM ratings WHERE rating_id = ?`, id)
	if err != nil {
		return nil, classifyGet(err, "Rating")
	}
	return &rating, nil
}

func (db *DB) ListRatings(ctx context.Context, skip, limit int) ([]*domain.Rating, error) {
	skip, limit = normalizeRange(skip, limit)

	ratings := []*domain.Rating{}
	err := db.SelectContext(ctx, &ratings, `SELECT * FROM ratings ORDER BY rating_id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list ratings").WithCause(err)
	}
	return ratings, nil
}

func (db *DB) UpdateRating(ctx context.Context, id int, updates map[string]any) (*domain.Rating, error) {
	if err := db.applyUpdate(ctx, "ratings", "rating_id", id, "Rating", updates, ratingColumns); err != nil {
		return nil, err
	}
	return db.GetRating(ctx, id)
}

func (db *DB) DeleteRating(ctx context.Context, id int) (*domain.Rating, error) {
	rating, err := db.GetRating(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM ratings WHERE rating_id = ?`, id); err != nil {
		return nil, classifyDelete(err, "failed to delete rating")
	}
	return rating, nil
}
