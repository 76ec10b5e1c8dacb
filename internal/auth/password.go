package auth

import (
	"sync"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

var (
	decoyOnce sync.Once
	decoyHash string
)

// HashPassword hashes a plaintext password using Argon2id with a random salt.
func HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, argon2id.DefaultParams)
}

// VerifyPassword compares a plaintext password against an Argon2id hash in constant time.
func VerifyPassword(password, hash string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		log.Error().Err(err).Msg("failed to verify password")
		return false
	}

	return match
}

// burnVerify runs a verification against a throwaway hash so a lookup miss
// costs the same as a wrong password.
func burnVerify(password string) {
	decoyOnce.Do(func() {
		h, err := HashPassword("decoy-password")
		if err != nil {
			log.Error().Err(err).Msg("failed to create decoy hash")
			return
		}

		decoyHash = h
	})

	if decoyHash != "" {
		_ = VerifyPassword(password, decoyHash)
	}
}
