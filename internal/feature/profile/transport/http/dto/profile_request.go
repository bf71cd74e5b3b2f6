// Package dto defines data transfer objects for the profile feature's HTTP transport layer.
package dto

import authdto "social_backend/internal/feature/auth/transport/http/dto"

// ProfileReq is the body of /profile/create and /profile/edit.
// Pointer fields distinguish an omitted field from an empty one.
type ProfileReq struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	DOB       *string `json:"dob"`
}

// ViewRes wraps the caller's user.
type ViewRes struct {
	User authdto.UserRes `json:"user"`
}

// UpdatedRes wraps the user after a profile change.
type UpdatedRes struct {
	UpdatedUser authdto.UserRes `json:"updatedUser"`
}
