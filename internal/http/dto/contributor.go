package dto

import "audiobookd/internal/domain"

// Authors and narrators share a shape but stay separate types, matching
// the separate tables underneath.

type AuthorCreateRequest struct {
	Name string  `json:"name" validate:"required"`
	Bio  *string `json:"bio"`
}

func (r *AuthorCreateRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *AuthorCreateRequest) ToModel() *domain.Author {
	return &domain.Author{Name: r.Name, Bio: r.Bio}
}

type AuthorUpdateRequest struct {
	Name Optional[string] `json:"name"`
	Bio  Optional[string] `json:"bio"`
}

func (r *AuthorUpdateRequest) Validate() []ValidationError {
	return notNull(r.Name, "name", nil)
}

func (r *AuthorUpdateRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	r.Name.put(updates, "name")
	r.Bio.put(updates, "bio")
	return updates
}

type NarratorCreateRequest struct {
	Name string  `json:"name" validate:"required"`
	Bio  *string `json:"bio"`
}

func (r *NarratorCreateRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *NarratorCreateRequest) ToModel() *domain.Narrator {
	return &domain.Narrator{Name: r.Name, Bio: r.Bio}
}

type NarratorUpdateRequest struct {
	Name Optional[string] `json:"name"`
	Bio  Optional[string] `json:"bio"`
}

func (r *NarratorUpdateRequest) Validate() []ValidationError {
	return notNull(r.Name, "name", nil)
}

func (r *NarratorUpdateRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	r.Name.put(updates, "name")
	r.Bio.put(updates, "bio")
	return updates
}
