package dto

import (
	"time"

	"social_backend/internal/feature/auth/domain/entity"
)

// UserRes is the public view of a user. The password hash is never included.
type UserRes struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	DOB       *time.Time `json:"dob,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewUserRes converts a user entity into its response.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		DOB:       u.DOB,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
