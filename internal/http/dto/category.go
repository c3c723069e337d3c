package dto

import "audiobookd/internal/domain"

type CategoryCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *CategoryCreateRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *CategoryCreateRequest) ToModel() *domain.Category {
	return &domain.Category{Name: r.Name}
}

type CategoryUpdateRequest struct {
	Name Optional[string] `json:"name"`
}

func (r *CategoryUpdateRequest) Validate() []ValidationError {
	return notNull(r.Name, "name", nil)
}

func (r *CategoryUpdateRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	r.Name.put(updates, "name")
	return updates
}
