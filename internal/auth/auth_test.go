package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// memStorage is a minimal in-memory implementation of Storage for tests.
type memStorage struct {
	mu      sync.Mutex
	data    map[string][]byte
	deletes int
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string][]byte)}
}

func (s *memStorage) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}

	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *memStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *memStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deletes++
	delete(s.data, key)

	return nil
}

func (s *memStorage) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.data[key]

	return ok
}

type testAccount struct {
	identity Identity
	password string
}

var testAccounts = []testAccount{
	{Identity{ID: "1", Name: "John Deng Majok", Email: "admin@teca.org", Role: RoleSuperAdmin}, "admin123"},
	{Identity{ID: "2", Name: "Mary Nyandeng Akot", Email: "editor@teca.org", Role: RoleEditor}, "editor123"},
	{Identity{ID: "3", Name: "Peter Malual Deng", Email: "finance@teca.org", Role: RoleFinance}, "finance123"},
	{Identity{ID: "4", Name: "Committee Member", Email: "committee@teca.org", Role: RoleCommittee}, "committee123"},
}

var (
	credOnce  sync.Once
	credTable StaticCredentials
	credErr   error
)

func testCredentials(t *testing.T) StaticCredentials {
	t.Helper()

	credOnce.Do(func() {
		entries := make([]Credential, 0, len(testAccounts))

		for _, a := range testAccounts {
			hash, err := HashPassword(a.password)
			if err != nil {
				credErr = err
				return
			}

			entries = append(entries, Credential{Identity: a.identity, PasswordHash: hash})
		}

		credTable, credErr = NewStaticCredentials(entries...)
	})

	require.NoError(t, credErr)

	return credTable
}

func newTestAuthority(t *testing.T, storage Storage) *Authority {
	t.Helper()

	return NewAuthority(Config{
		Credentials: testCredentials(t),
		Storage:     storage,
		Latency:     -1,
	})
}
