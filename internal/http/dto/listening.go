package dto

import (
	"time"

	"audiobookd/internal/domain"
)

type ListeningHistoryCreateRequest struct {
	UserID      int        `json:"user_id" validate:"required"`
	AudiobookID int        `json:"audiobook_id" validate:"required"`
	StartedAt   time.Time  `json:"started_at" validate:"required"`
	FinishedAt  *time.Time `json:"finished_at"`
}

func (r *ListeningHistoryCreateRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *ListeningHistoryCreateRequest) ToModel() *domain.ListeningHistory {
	return &domain.ListeningHistory{
		UserID:      r.UserID,
		AudiobookID: r.AudiobookID,
		StartedAt:   r.StartedAt,
		FinishedAt:  r.FinishedAt,
	}
}

type ListeningHistoryUpdateRequest struct {
	UserID      Optional[int]       `json:"user_id"`
	AudiobookID Optional[int]       `json:"audiobook_id"`
	StartedAt   Optional[time.Time] `json:"started_at"`
	FinishedAt  Optional[time.Time] `json:"finished_at"`
}

func (r *ListeningHistoryUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = notNull(r.UserID, "user_id", errs)
	errs = notNull(r.AudiobookID, "audiobook_id", errs)
	errs = notNull(r.StartedAt, "started_at", errs)
	return errs
}

func (r *ListeningHistoryUpdateRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	r.UserID.put(updates, "user_id")
	r.AudiobookID.put(updates, "audiobook_id")
	r.StartedAt.put(updates, "started_at")
	r.FinishedAt.put(updates, "finished_at")
	return updates
}
