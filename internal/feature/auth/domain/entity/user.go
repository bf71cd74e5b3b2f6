// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and the optional profile.
type User struct {
	// ID is the opaque unique identifier, assigned by the store on create.
	ID string `gorm:"primaryKey;size:36"`

	// Username is alphanumeric.
	Username string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash. Plaintext is never stored.
	Password string `gorm:"size:255;not null" json:"-"`

	FirstName string `gorm:"size:255"`
	LastName  string `gorm:"size:255"`

	// DOB is the date of birth; nil until the profile is created.
	DOB *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileUpdate lists the profile fields to change. Nil fields are left as they are.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	DOB       *time.Time
	UpdatedAt time.Time
}
