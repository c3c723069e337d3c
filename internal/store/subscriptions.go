package store

import (
	"context"
	"time"

	"audiobookd/internal/domain"
)

var subscriptionColumns = map[string]bool{
	"name":          true,
	"price":         true,
	"duration_days": true,
}

func (db *DB) CreateSubscription(ctx context.Context, sub *domain.Subscription) error {
	sub.CreatedAt = time.Now().UTC()

	query := `INSERT INTO subscriptions (name, price, duration_days, created_at)
		VALUES (:name, :price, :duration_days, :created_at)`

	result, err := db.NamedExecContext(ctx, query, sub)
	if err != nil {
		return classifyWrite(err, "failed to create subscription")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ErrStorage.WithMessage("failed to read subscription id").WithCause(err)
	}
	sub.SubscriptionID = int(id)
	return nil
}

func (db *DB) GetSubscription(ctx context.Context, id int) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := db.GetContext(ctx, &sub, `SELECT * FROM subscriptions WHERE subscription_id = ?`, id)
	if err != nil {
		return nil, classifyGet(err, "Subscription")
	}
	return &sub, nil
}

func (db *DB) ListSubscriptions(ctx context.Context, skip, limit int) ([]*domain.Subscription, error) {
	skip, limit = normalizeRange(skip, limit)

	subs := []*domain.Subscription{}
	err := db.SelectContext(ctx, &subs, `SELECT * FROM subscriptions ORDER BY subscription_id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list subscriptions").WithCause(err)
	}
	return subs, nil
}

func (db *DB) UpdateSubscription(ctx context.Context, id int, updates map[string]any) (*domain.Subscription, error) {
	if err := db.applyUpdate(ctx, "subscriptions", "subscription_id", id, "Subscription", updates, subscriptionColumns); err != nil {
		return nil, err
	}
	return db.GetSubscription(ctx, id)
}

func (db *DB) DeleteSubscription(ctx context.Context, id int) (*domain.Subscription, error) {
	sub, err := db.GetSubscription(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM subscriptions WHERE subscription_id = ?`, id); err != nil {
		return nil, classifyDelete(err, "failed to delete subscription")
	}
	return sub, nil
}
