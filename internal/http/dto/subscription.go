package dto

import (
	"time"

	"audiobookd/internal/domain"
)

type SubscriptionCreateRequest struct {
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	DurationDays int     `json:"duration_days" validate:"gt=0"`
}

func (r *SubscriptionCreateRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *SubscriptionCreateRequest) ToModel() *domain.Subscription {
	return &domain.Subscription{
		Name:         r.Name,
		Price:        r.Price,
		DurationDays: r.DurationDays,
	}
}

type SubscriptionUpdateRequest struct {
	Name         Optional[string]  `json:"name"`
	Price        Optional[float64] `json:"price"`
	DurationDays Optional[int]     `json:"duration_days"`
}

func (r *SubscriptionUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = notNull(r.Name, "name", errs)
	errs = notNull(r.Price, "price", errs)
	errs = notNull(r.DurationDays, "duration_days", errs)
	if r.Price.Value != nil && *r.Price.Value < 0 {
		errs = append(errs, ValidationError{Field: "price", Message: "must be at least 0"})
	}
	if r.DurationDays.Value != nil && *r.DurationDays.Value <= 0 {
		errs = append(errs, ValidationError{Field: "duration_days", Message: "must be greater than 0"})
	}
	return errs
}

func (r *SubscriptionUpdateRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	r.Name.put(updates, "name")
	r.Price.put(updates, "price")
	r.DurationDays.put(updates, "duration_days")
	return updates
}

// UserSubscriptionRequest attaches a user to a plan for a date range.
type UserSubscriptionRequest struct {
	SubscriptionID int       `json:"subscription_id" validate:"required"`
	StartDate      time.Time `json:"start_date" validate:"required"`
	EndDate        time.Time `json:"end_date" validate:"required"`
}

func (r *UserSubscriptionRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *UserSubscriptionRequest) ToModel(userID int) *domain.UserSubscription {
	return &domain.UserSubscription{
		UserID:         userID,
		SubscriptionID: r.SubscriptionID,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
	}
}
