package dto

import (
	"time"

	"audiobookd/internal/domain"
)

type UserCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *UserCreateRequest) Validate() []ValidationError {
	return checkStruct(r)
}

func (r *UserCreateRequest) ToModel() *domain.User {
	return &domain.User{
		Username: r.Username,
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type UserUpdateRequest struct {
	Username Optional[string] `json:"username"`
	Name     Optional[string] `json:"name"`
	Email    Optional[string] `json:"email"`
	Password Optional[string] `json:"password"`
}

func (r *UserUpdateRequest) Validate() []ValidationError {
	var errs []ValidationError
	errs = notNull(r.Username, "username", errs)
	errs = notNull(r.Name, "name", errs)
	errs = notNull(r.Email, "email", errs)
	errs = notNull(r.Password, "password", errs)
	if r.Email.Present && r.Email.Value != nil {
		if err := validate.Var(*r.Email.Value, "email"); err != nil {
			errs = append(errs, ValidationError{Field: "email", Message: "must be a valid email address"})
		}
	}
	return errs
}

func (r *UserUpdateRequest) ToUpdates() map[string]any {
	updates := make(map[string]any)
	r.Username.put(updates, "username")
	r.Name.put(updates, "name")
	r.Email.put(updates, "email")
	r.Password.put(updates, "password")
	return updates
}

// UserResponse is the public shape of a user. The display name and
// password never leave the service.
type UserResponse struct {
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserListResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
