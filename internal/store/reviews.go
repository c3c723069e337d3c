package store

import (
	"context"
	"time"

	"audiobookd/internal/domain"
)

var reviewColumns = map[string]bool{
	"user_id":      true,
	"audiobook_id": true,
	"review_text":  true,
}

func (db *DB) CreateReview(ctx context.Context, review *domain.Review) error {
	review.CreatedAt = time.Now().UTC()

	query := `INSERT INTO reviews (user_id, audiobook_id, review_text, created_at)
		VALUES (:user_id, :audiobook_id, :review_text, :created_at)`

	result, err := db.NamedExecContext(ctx, query, review)
	if err != nil {
		return classifyWrite(err, "failed to create review")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ErrStorage.WithMessage("failed to read review id").WithCause(err)
	}
	review.ReviewID = int(id)
	return nil
}

func (db *DB) GetReview(ctx context.Context, id int) (*domain.Review, error) {
	var review domain.Review
	err := db.GetContext(ctx, &review, `SELECT * FROM reviews WHERE review_id = ?`, id)
	if err != nil {
		return nil, classifyGet(err, "Review")
	}
	return &review, nil
}

func (db *DB) ListReviews(ctx context.Context, skip, limit int) ([]*domain.Review, error) {
	skip, limit = normalizeRange(skip, limit)

	reviews := []*domain.Review{}
	err := db.SelectContext(ctx, &reviews, `SELECT * FROM reviews ORDER BY review_id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list reviews").WithCause(err)
	}
	return reviews, nil
}

func (db *DB) UpdateReview(ctx context.Context, id int, updates map[string]any) (*domain.Review, error) {
	if err := db.applyUpdate(ctx, "reviews", "review_id", id, "Review", updates, reviewColumns); err != nil {
		return nil, err
	}
	return db.GetReview(ctx, id)
}

func (db *DB) DeleteReview(ctx context.Context, id int) (*domain.Review, error) {
	review, err := db.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM reviews WHERE review_id = ?`, id); err != nil {
		return nil, classifyDelete(err, "failed to delete review")
	}
	return review, nil
}
