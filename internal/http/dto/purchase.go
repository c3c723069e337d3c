package dto

import (
	"time"

	"audiobookd/internal/domain"
)

type PurchaseCreateRequest struct {
	UserID       int       `json:"user_id" validate:"required"`
	AudiobookID  int       `json:"audiobook_id" validate:"required"`
	PurchaseDate time.Time `json:"purchase_date" validate:"required"`
}

func (r *PurchaseCreateRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *PurchaseCreateRequest) ToModel() *domain.Purchase {
	return &domain.Purchase{
		UserID:       r.UserID,
		AudiobookID:  r.AudiobookID,
		PurchaseDate: r.PurchaseDate,
	}
}

type PurchaseUpdateRequest struct {
	UserID       Optional[int]       `json:"user_id"`
	AudiobookID  Optional[int]       `json:"audiobook_id"`
	PurchaseDate Optional[time.Time] `json:"purchase_date"`
}

func (r *PurchaseUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = notNull(r.UserID, "user_id", errs)
	errs = notNull(r.AudiobookID, "audiobook_id", errs)
	errs = notNull(r.PurchaseDate, "purchase_date", errs)
	return errs
}

func (r *PurchaseUpdateRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	r.UserID.put(updates, "user_id")
	r.AudiobookID.put(updates, "audiobook_id")
	r.PurchaseDate.put(updates, "purchase_date")
	return updates
}
