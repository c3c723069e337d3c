package store

import (
	"context"

	"audiobookd/internal/domain"
)

var listeningHistoryColumns = map[string]bool{
	"user_id":      true,
	"audiobook_id": true,
	"started_at":   true,
	"finished_at":  true,
}

// CreateListeningHistory inserts a listening session. StartedAt comes
// from the caller; finished_at ordering is deliberately not checked.
func (db *DB) CreateListeningHistory(ctx context.Context, history *domain.ListeningHistory) error {
	query := `INSERT INTO listening_histories (user_id, audiobook_id, started_at, finished_at)
		VALUES (:user_id, :audiobook_id, :started_at, :finished_at)`

	result, err := db.NamedExecContext(ctx, query, history)
	if err != nil {
		return classifyWrite(err, "failed to create listening history")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return ErrStorage.WithMessage("failed to read listening history id").WithCause(err)
	}
	history.HistoryID = int(id)
	return nil
}

func (db *DB) GetListeningHistory(ctx context.Context, id int) (*domain.ListeningHistory, error) {
	var history domain.ListeningHistory
	err := db.GetContext(ctx, &history, `SELECT * FROM listening_histories WHERE history_id = ?`, id)
	if err != nil {
		return nil, classifyGet(err, "ListeningHistory")
	}
	return &history, nil
}

func (db *DB) ListListeningHistories(ctx context.Context, skip, limit int) ([]*domain.ListeningHistory, error) {
	skip, limit = normalizeRange(skip, limit)

	histories := []*domain.ListeningHistory{}
	err := db.SelectContext(ctx, &histories, `SELECT * FROM listening_histories ORDER BY history_id LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, ErrStorage.WithMessage("failed to list listening histories").WithCause(err)
	}
	return histories, nil
}

func (db *DB) UpdateListeningHistory(ctx context.Context, id int, updates map[string]any) (*domain.ListeningHistory, error) {
	if err := db.applyUpdate(ctx, "listening_histories", "history_id", id, "ListeningHistory", updates, listeningHistoryColumns); err != nil {
		return nil, err
	}
	return db.GetListeningHistory(ctx, id)
}

func (db *DB) DeleteListeningHistory(ctx context.Context, id int) (*domain.ListeningHistory, error) {
	history, err := db.GetListeningHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM listening_histories WHERE history_id = ?`, id); err != nil {
		return nil, classifyDelete(err, "failed to delete listening history")
	}
	return history, nil
}
