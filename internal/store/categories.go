package store

import (
	"context"
	"time"

	"audiobookd/internal/domain"
)

var categoryColumns = map[string]bool{
	"name": true,
}

func (db *DB) CreateCategory(ctx context.Context, category *domain.Category) error {
	category.CreatedAt = time.Now().UTC()

	query := `INSERT INTO categories (name, created_at) VALUES (:name, :created_at)`

	result, err := db.NamedExecContext(ctx, query, category)
	if err != nil {
		return classifyWrite(err, "failed to create category")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ErrStorage.WithMessage("failed to read category id").WithCause(err)
	}
	category.CategoryID = int(id)
	return nil
}

func (db *DB) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	var category domain.Category
	err := db.GetContext(ctx, &category, `SELECT * FROM categories WHERE category_id = ?`, id)
	if err != nil {
		return nil, classifyGet(err, "Category")
	}
	return &category, nil
}

func (db *DB) ListCategories(ctx context.Context, skip, limit int) ([]*domain.Category, error) {
	skip, limit = normalizeRange(skip, limit)

	categories := []*domain.Category{}
	err := db.SelectContext(ctx, &categories, `SELECT * FROM categories ORDER BY category_id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list categories").WithCause(err)
	}
	return categories, nil
}

func (db *DB) UpdateCategory(ctx context.Context, id int, updates map[string]any) (*domain.Category, error) {
	if err := db.applyUpdate(ctx, "categories", "category_id", id, "Category", updates, categoryColumns); err != nil {
		return nil, err
	}
	return db.GetCategory(ctx, id)
}

func (db *DB) DeleteCategory(ctx context.Context, id int) (*domain.Category, error) {
	category, err := db.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM categories WHERE category_id = ?`, id); err != nil {
		return nil, classifyDelete(err, "failed to delete category")
	}
	return category, nil
}
