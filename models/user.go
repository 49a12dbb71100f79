package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Password carries the plaintext password on register/login requests
	// only. It is never persisted; the bcrypt hash is stored instead.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// EmergencyContactEmail is the pre-registered contact notified when a
	// high-severity crisis assessment fires. Empty when not configured.
	EmergencyContactEmail string `json:"emergency_contact_email,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
