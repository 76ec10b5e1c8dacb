package auth

import "errors"

var (
	// ErrCredentialNotFound is returned by a CredentialStore when no entry exists for an email.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrDuplicateEmail is returned when a credential table holds the same email twice.
	ErrDuplicateEmail = errors.New("duplicate email in credential table")

	// ErrUnknownRole is returned when a role name is outside the closed set of roles.
	ErrUnknownRole = errors.New("unknown role")

	// ErrInvalidIdentity is returned when a serialized identity is missing required fields.
	ErrInvalidIdentity = errors.New("invalid identity")

	// ErrNoStorage is returned when an Authority is built without a storage backend.
	ErrNoStorage = errors.New("session storage is nil")
)
