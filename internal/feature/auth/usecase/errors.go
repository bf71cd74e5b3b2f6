// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Client-visible messages.
const (
	MsgAllFieldsRequired   = "All fields are required"
	MsgUserRegistered      = "User already registered"
	MsgInvalidCredentials  = "Email or password is not valid"
	MsgUserNotFound        = "User not found"
	msgRegistrationFailure = "failed to register user"
	msgLoginFailure        = "failed to log in"
)
