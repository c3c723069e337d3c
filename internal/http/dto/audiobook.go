package dto

import (
	"time"

	"audiobookd/internal/domain"
)

type AudiobookCreateRequest struct {
	Title       string     `json:"title" validate:"required"`
	AuthorID    int        `json:"author_id" validate:"required"`
	NarratorID  *int       `json:"narrator_id"`
	Duration    int        `json:"duration" validate:"gt=0"`
	Description *string    `json:"description"`
	ReleaseDate *time.Time `json:"release_date"`
}

func (r *AudiobookCreateRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *AudiobookCreateRequest) ToModel() *domain.Audiobook {
	return &domain.Audiobook{
		Title:       r.Title,
		AuthorID:    r.AuthorID,
		NarratorID:  r.NarratorID,
		Duration:    r.Duration,
		Description: r.Description,
		ReleaseDate: r.ReleaseDate,
	}
}

type AudiobookUpdateRequest struct {
	Title       Optional[string]    `json:"title"`
	AuthorID    Optional[int]       `json:"author_id"`
	NarratorID  Optional[int]       `json:"narrator_id"`
	Duration    Optional[int]       `json:"duration"`
	Description Optional[string]    `json:"description"`
	ReleaseDate Optional[time.Time] `json:"release_date"`
}

func (r *AudiobookUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = notNull(r.Title, "title", errs)
	errs = notNull(r.AuthorID, "author_id", errs)
	errs = notNull(r.Duration, "duration", errs)
	if r.Duration.Value != nil && *r.Duration.Value <= 0 {
		errs = append(errs, ValidationError{Field: "duration", Message: "must be greater than 0"})
	}
	return errs
}

func (r *AudiobookUpdateRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	r.Title.put(updates, "title")
	r.AuthorID.put(updates, "author_id")
	r.NarratorID.put(updates, "narrator_id")
	r.Duration.put(updates, "duration")
	r.Description.put(updates, "description")
	r.ReleaseDate.put(updates, "release_date")
	return updates
}

// AudiobookCategoryRequest attaches a category to an audiobook.
type AudiobookCategoryRequest struct {
	CategoryID int `json:"category_id" validate:"required"`
}

func (r *AudiobookCategoryRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *AudiobookCategoryRequest) ToModel(audiobookID int) *domain.AudiobookCategory {
	return &domain.AudiobookCategory{AudiobookID: audiobookID, CategoryID: r.CategoryID}
}
