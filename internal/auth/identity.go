package auth

import (
	"encoding/json"
	"fmt"
)

// Identity is an authenticated principal.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Validate checks that the identity carries an id, an email and a known role.
func (i *Identity) Validate() error {
	if i.ID == "" || i.Email == "" {
		return ErrInvalidIdentity
	}

	if !i.Role.IsValid() {
		return fmt.Errorf("%w: %w", ErrInvalidIdentity, ErrUnknownRole)
	}

	return nil
}

// MarshalIdentity serializes an identity for durable storage.
func MarshalIdentity(i *Identity) ([]byte, error) {
	return json.Marshal(i)
}

// UnmarshalIdentity parses a stored identity and validates it.
func UnmarshalIdentity(data []byte) (*Identity, error) {
	var i Identity
	if err := json.Unmarshal(data, &i); err != nil {
		return nil, fmt.Errorf("decode identity: %w", err)
	}

	if err := i.Validate(); err != nil {
		return nil, err
	}

	return &i, nil
}
