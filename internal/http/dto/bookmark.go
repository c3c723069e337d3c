package dto

import "audiobookd/internal/domain"

type BookmarkCreateRequest struct {
	UserID      int  `json:"user_id" validate:"required"`
	AudiobookID int  `json:"audiobook_id" validate:"required"`
	ChapterID   *int `json:"chapter_id"`
	Position    int  `json:"position" validate:"gte=0"`
}

func (r *BookmarkCreateRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *BookmarkCreateRequest) ToModel() *domain.Bookmark {
	return &domain.Bookmark{
		UserID:      r.UserID,
		AudiobookID: r.AudiobookID,
		ChapterID:   r.ChapterID,
		Position:    r.Position,
	}
}

type BookmarkUpdateRequest struct {
	UserID      Optional[int] `json:"user_id"`
	AudiobookID Optional[int] `json:"audiobook_id"`
	ChapterID   Optional[int] `json:"chapter_id"`
	Position    Optional[int] `json:"position"`
}

func (r *BookmarkUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = notNull(r.UserID, "user_id", errs)
	errs = notNull(r.AudiobookID, "audiobook_id", errs)
	errs = notNull(r.Position, "position", errs)
	if r.Position.Value != nil && *r.Position.Value < 0 {
		errs = append(errs, ValidationError{Field: "position", Message: "must be at least 0"})
	}
	return errs
}

func (r *BookmarkUpdateRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	r.UserID.put(updates, "user_id")
	r.AudiobookID.put(updates, "audiobook_id")
	r.ChapterID.put(updates, "chapter_id")
	r.Position.put(updates, "position")
	return updates
}
