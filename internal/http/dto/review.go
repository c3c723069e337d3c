package dto

import "audiobookd/internal/domain"

type ReviewCreateRequest struct {
	UserID      int     `json:"user_id" validate:"required"`
	AudiobookID int     `json:"audiobook_id" validate:"required"`
	ReviewText  *string `json:"review_text"`
}

func (r *ReviewCreateRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *ReviewCreateRequest) ToModel() *domain.Review {
	return &domain.Review{
		UserID:      r.UserID,
		AudiobookID: r.AudiobookID,
		ReviewText:  r.ReviewText,
	}
}

type ReviewUpdateRequest struct {
	UserID      Optional[int]    `json:"user_id"`
	AudiobookID Optional[int]    `json:"audiobook_id"`
	ReviewText  Optional[string] `json:"review_text"`
}

func (r *ReviewUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = notNull(r.UserID, "user_id", errs)
	errs = notNull(r.AudiobookID, "audiobook_id", errs)
	return errs
}

func (r *ReviewUpdateRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	r.UserID.put(updates, "user_id")
	r.AudiobookID.put(updates, "audiobook_id")
	r.ReviewText.put(updates, "review_text")
	return updates
}

// Ratings are a 1-5 score, separate from free-text reviews.

type RatingCreateRequest struct {
	UserID      int `json:"user_id" validate:"required"`
	AudiobookID int `json:"audiobook_id" validate:"required"`
	Rating      int `json:"rating" validate:"required,min=1,max=5"`
}

func (r *RatingCreateRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *RatingCreateRequest) ToModel() *domain.Rating {
	return &domain.Rating{
		UserID:      r.UserID,
		AudiobookID: r.AudiobookID,
		Rating:      r.Rating,
	}
}

type RatingUpdateRequest struct {
	UserID      Optional[int] `json:"user_id"`
	AudiobookID Optional[int] `json:"audiobook_id"`
	Rating      Optional[int] `json:"rating"`
}

func (r *RatingUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = notNull(r.UserID, "user_id", errs)
	errs = notNull(r.AudiobookID, "audiobook_id", errs)
	errs = notNull(r.Rating, "rating", errs)
	if r.Rating.Value != nil && (*r.Rating.Value < 1 || *r.Rating.Value > 5) {
		errs = append(errs, ValidationError{Field: "rating", Message: "must be between 1 and 5"})
	}
	return errs
}

func (r *RatingUpdateRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	r.UserID.put(updates, "user_id")
	r.AudiobookID.put(updates, "audiobook_id")
	r.Rating.put(updates, "rating")
	return updates
}
