// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered user row in the users table.
// The ID and both timestamps are assigned by the store; Username is
// immutable once the row has been created.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username identifies the user publicly.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:50;not null"`

	// Email is the user's contact email address.
	Email string `gorm:"size:100;not null"`

	// Phone is the user's phone number. It may be empty.
	Phone string `gorm:"size:20"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `gorm:"not null"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `gorm:"not null"`
}

// UpdateInfo overwrites the mutable fields of the user.
// Username and ID are never touched after creation.
func (u *User) UpdateInfo(email, phone string) {
	u.Email = email
	u.Phone = phone
}
