package auth

import (
	"context"
	"fmt"
)

// Credential is one entry of the credential table.
type Credential struct {
	Identity     Identity
	PasswordHash string
}

// CredentialStore looks up credentials by email. Lookups are case-sensitive
// exact matches and return ErrCredentialNotFound on a miss.
type CredentialStore interface {
	Lookup(ctx context.Context, email string) (Credential, error)
}

// StaticCredentials is an in-memory credential table keyed by email.
type StaticCredentials map[string]Credential

// NewStaticCredentials builds a credential table and rejects duplicate emails.
func NewStaticCredentials(entries ...Credential) (StaticCredentials, error) {
	out := make(StaticCredentials, len(entries))

	for _, e := range entries {
		if err := e.Identity.Validate(); err != nil {
			return nil, fmt.Errorf("credential %q: %w", e.Identity.Email, err)
		}

		if _, exists := out[e.Identity.Email]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEmail, e.Identity.Email)
		}

		out[e.Identity.Email] = e
	}

	return out, nil
}

// Lookup implements CredentialStore.
func (s StaticCredentials) Lookup(_ context.Context, email string) (Credential, error) {
	c, ok := s[email]
	if !ok {
		return Credential{}, ErrCredentialNotFound
	}

	return c, nil
}
