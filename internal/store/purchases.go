package store

import (
	"context"

	"audiobookd/internal/domain"
)

var purchaseColumns = map[string]bool{
	"user_id":       true,
	"audiobook_id":  true,
	"purchase_date": true,
}

func (db *DB) CreatePurchase(ctx context.Context, purchase *domain.Purchase) error {
	query := `INSERT INTO purchases (user_id, audiobook_id, purchase_date)
		VALUES (:user_id, :audiobook_id, :purchase_date)`

	result, err := db.NamedExecContext(ctx, query, purchase)
	if err != nil {
		return classifyWrite(err, "failed to create purchase")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ErrStorage.WithMessage("failed to read purchase id").WithCause(err)
	}
	purchase.PurchaseID = int(id)
	return nil
}

func (db *DB) GetPurchase(ctx context.Context, id int) (*domain.Purchase, error) {
	var purchase domain.Purchase
	err := db.GetContext(ctx, &purchase, `SELECT * FROM purchases WHERE purchase_id = ?`, id)
	if err != nil {
		return nil, classifyGet(err, "Purchase")
	}
	return &purchase, nil
}

func (db *DB) ListPurchases(ctx context.Context, skip, limit int) ([]*domain.Purchase, error) {
	skip, limit = normalizeRange(skip, limit)

	purchases := []*domain.Purchase{}
	err := db.SelectContext(ctx, &purchases, `SELECT * FROM purchases ORDER BY purchase_id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list purchases").WithCause(err)
	}
	return purchases, nil
}

func (db *DB) UpdatePurchase(ctx context.Context, id int, updates map[string]any) (*domain.Purchase, error) {
	if err := db.applyUpdate(ctx, "purchases", "purchase_id", id, "Purchase", updates, purchaseColumns); err != nil {
		return nil, err
	}
	return db.GetPurchase(ctx, id)
}

func (db *DB) DeletePurchase(ctx context.Context, id int) (*domain.Purchase, error) {
	purchase, err := db.GetPurchase(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM purchases WHERE purchase_id = ?`, id); err != nil {
		return nil, classifyDelete(err, "failed to delete purchase")
	}
	return purchase, nil
}
