// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

var (
	// ErrCredentialEncoding is returned when a credential cannot be produced, e.g. the random source failed.
	ErrCredentialEncoding = errors.New("credential encoding failed")

	// ErrMalformedCredential is returned when a stored credential cannot be parsed.
	ErrMalformedCredential = errors.New("malformed credential")
)

// CredentialCodec turns plaintext passwords into self-describing stored credentials and checks them.
// Stored credentials carry their own parameters, so changing the defaults never invalidates them.
type CredentialCodec interface {
	// Encode derives a new credential with a fresh random salt.
	Encode(plaintext string) (string, error)

	// Verify reports whether plaintext matches the stored credential.
	// A mismatch is (false, nil); an unparseable credential is ErrMalformedCredential.
	Verify(plaintext, stored string) (bool, error)

	// NeedsRehash reports whether the stored credential was derived with weaker parameters than the current ones.
	NeedsRehash(stored string) bool
}
