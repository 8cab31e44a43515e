// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account able to log meals. Records are created by registration and never mutated afterwards.
type User struct {
	ID                 int64     // Store-assigned identifier.
	Username           string    // Trimmed display/login name, unique case-insensitively.
	Email              string    // Trimmed, lower-cased contact address, unique case-insensitively.
	PasswordCredential string    // Self-describing encoded password; never leaves the account service.
	CreatedAt          time.Time // Timestamp of registration.
}

// PublicUser is the externally visible projection of a User. It deliberately has no credential field.
type PublicUser struct {
	ID        int64
	Username  string
	Email     string
	CreatedAt time.Time
}

// Public strips the credential from the user.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// HasCredential reports whether a password credential is stored for the user.
func (u *User) HasCredential() bool {
	return u != nil && u.PasswordCredential != ""
}
