package dto

import "audiobookd/internal/domain"

type ChapterCreateRequest struct {
	AudiobookID int     `json:"audiobook_id" validate:"required"`
	Title       *string `json:"title"`
	Duration    int     `json:"duration" validate:"gt=0"`
	Position    int     `json:"position" validate:"gte=0"`
}

func (r *ChapterCreateRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *ChapterCreateRequest) ToModel() *domain.Chapter {
	return &domain.Chapter{
		AudiobookID: r.AudiobookID,
		Title:       r.Title,
		Duration:    r.Duration,
		Position:    r.Position,
	}
}

type ChapterUpdateRequest struct {
	AudiobookID Optional[int]    `json:"audiobook_id"`
	Title       Optional[string] `json:"title"`
	Duration    Optional[int]    `json:"duration"`
	Position    Optional[int]    `json:"position"`
}

func (r *ChapterUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = notNull(r.AudiobookID, "audiobook_id", errs)
	errs = notNull(r.Duration, "duration", errs)
	errs = notNull(r.Position, "position", errs)
	if r.Duration.Value != nil && *r.Duration.Value <= 0 {
		errs = append(errs, ValidationError{Field: "duration", Message: "must be greater than 0"})
	}
	if r.Position.Value != nil && *r.Position.Value < 0 {
		errs = append(errs, ValidationError{Field: "position", Message: "must be at least 0"})
	}
	return errs
}

func (r *ChapterUpdateRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	r.AudiobookID.put(updates, "audiobook_id")
	r.Title.put(updates, "title")
	r.Duration.put(updates, "duration")
	r.Position.put(updates, "position")
	return updates
}
