package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"super admin", "admin@teca.org", "admin123", true},
		{"editor", "editor@teca.org", "editor123", true},
		{"finance", "finance@teca.org", "finance123", true},
		{"committee", "committee@teca.org", "committee123", true},
		{"wrong password", "admin@teca.org", "admin124", false},
		{"password of other account", "editor@teca.org", "admin123", false},
		{"unknown email", "nobody@teca.org", "admin123", false},
		{"email differs in case", "Admin@teca.org", "admin123", false},
		{"empty email", "", "admin123", false},
		{"empty password", "admin@teca.org", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := newMemStorage()
			a := newTestAuthority(t, storage)
			a.Restore()

			ok, err := a.Login(context.Background(), tt.email, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)

			s := a.Snapshot()
			if tt.want {
				assert.Equal(t, StateAuthenticated, s.State)
				require.NotNil(t, s.Identity)
				assert.Equal(t, tt.email, s.Identity.Email)
				assert.True(t, storage.has(DefaultStorageKey))
			} else {
				assert.Equal(t, StateAnonymous, s.State)
				assert.Nil(t, s.Identity)
				assert.False(t, storage.has(DefaultStorageKey))
			}
		})
	}
}

func TestLogin_FailureKeepsAuthenticatedSession(t *testing.T) {
	a := newTestAuthority(t, newMemStorage())
	a.Restore()

	ok, err := a.Login(context.Background(), "editor@teca.org", "editor123")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = a.Login(context.Background(), "admin@teca.org", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	s := a.Snapshot()
	assert.Equal(t, StateAuthenticated, s.State)
	assert.Equal(t, "editor@teca.org", s.Identity.Email)
}

func TestRestore_RoundTripAfterLogin(t *testing.T) {
	storage := newMemStorage()

	first := newTestAuthority(t, storage)
	first.Restore()

	ok, err := first.Login(context.Background(), "finance@teca.org", "finance123")
	require.NoError(t, err)
	require.True(t, ok)

	// a fresh authority on the same storage simulates a page reload
	reloaded := newTestAuthority(t, storage)
	assert.Equal(t, StateUninitialized, reloaded.Snapshot().State)

	reloaded.Restore()

	s := reloaded.Snapshot()
	require.Equal(t, StateAuthenticated, s.State)
	assert.Equal(t, *first.Identity(), *s.Identity)
}

func TestRestore_AfterLogoutIsAnonymous(t *testing.T) {
	storage := newMemStorage()

	a := newTestAuthority(t, storage)
	a.Restore()

	ok, err := a.Login(context.Background(), "admin@teca.org", "admin123")
	require.NoError(t, err)
	require.True(t, ok)

	a.Logout()
	assert.Equal(t, StateAnonymous, a.Snapshot().State)
	assert.Nil(t, a.Identity())

	reloaded := newTestAuthority(t, storage)
	reloaded.Restore()
	assert.Equal(t, StateAnonymous, reloaded.Snapshot().State)
}

func TestLogout_WhenAnonymous(t *testing.T) {
	a := newTestAuthority(t, newMemStorage())
	a.Restore()

	a.Logout()
	a.Logout()

	assert.Equal(t, StateAnonymous, a.Snapshot().State)
}

func TestRestore_CorruptEntries(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{not-json"},
		{"unknown role", `{"id":"9","name":"X","email":"x@teca.org","role":"OWNER"}`},
		{"missing id", `{"name":"X","email":"x@teca.org","role":"EDITOR"}`},
		{"wrong shape", `["EDITOR"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := newMemStorage()
			require.NoError(t, storage.Set(DefaultStorageKey, []byte(tt.raw), 0))

			a := newTestAuthority(t, storage)
			a.Restore()

			assert.Equal(t, StateAnonymous, a.Snapshot().State)
			assert.False(t, storage.has(DefaultStorageKey), "corrupt entry must be deleted")
		})
	}
}

func TestRestore_EmptyStorage(t *testing.T) {
	storage := newMemStorage()

	a := newTestAuthority(t, storage)
	a.Restore()

	assert.Equal(t, StateAnonymous, a.Snapshot().State)
	assert.Equal(t, 0, storage.deletes)
}

func TestRestore_NilStorage(t *testing.T) {
	a := NewAuthority(Config{Credentials: testCredentials(t), Latency: -1})
	a.Restore()

	assert.Equal(t, StateAnonymous, a.Snapshot().State)

	ok, err := a.Login(context.Background(), "admin@teca.org", "admin123")
	require.ErrorIs(t, err, ErrNoStorage)
	assert.False(t, ok)
	assert.Equal(t, StateAnonymous, a.Snapshot().State)
}

func TestHasPermission(t *testing.T) {
	a := newTestAuthority(t, newMemStorage())
	a.Restore()

	assert.False(t, a.HasPermission(PermRead), "anonymous session has no permissions")

	ok, err := a.Login(context.Background(), "editor@teca.org", "editor123")
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, a.HasPermission(PermWriteNews))
	assert.False(t, a.HasPermission(PermWriteDonations))
	assert.ElementsMatch(t, DefaultPermissionTable()[RoleEditor], a.Permissions())

	a.Logout()
	assert.False(t, a.HasPermission(PermWriteNews))
}

func TestSubscribe(t *testing.T) {
	a := newTestAuthority(t, newMemStorage())

	var (
		mu     sync.Mutex
		states []State
	)

	unsubscribe := a.Subscribe(func(s Session) {
		mu.Lock()
		defer mu.Unlock()

		states = append(states, s.State)
	})

	a.Restore()

	ok, err := a.Login(context.Background(), "admin@teca.org", "admin123")
	require.NoError(t, err)
	require.True(t, ok)

	a.Logout()
	unsubscribe()
	a.Restore()

	mu.Lock()
	defer mu.Unlock()

	assert.Equal(t, []State{
		StateLoading, StateAnonymous, // restore
		StateLoading, StateAuthenticated, // login
		StateAnonymous, // logout
	}, states)
}

func TestLogin_SimulatedLatency(t *testing.T) {
	a := NewAuthority(Config{
		Credentials: testCredentials(t),
		Storage:     newMemStorage(),
		Latency:     20 * time.Millisecond,
	})
	a.Restore()

	start := time.Now()
	ok, err := a.Login(context.Background(), "admin@teca.org", "admin123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestLogin_ContextCanceledDuringLatency(t *testing.T) {
	a := NewAuthority(Config{
		Credentials: testCredentials(t),
		Storage:     newMemStorage(),
		Latency:     time.Hour,
	})
	a.Restore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := a.Login(ctx, "admin@teca.org", "admin123")
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
	assert.Equal(t, StateAnonymous, a.Snapshot().State)
}

func TestLogin_ConcurrentLastWriteWins(t *testing.T) {
	storage := newMemStorage()

	a := NewAuthority(Config{
		Credentials: testCredentials(t),
		Storage:     storage,
		Latency:     5 * time.Millisecond,
	})
	a.Restore()

	var wg sync.WaitGroup

	for _, acc := range testAccounts {
		wg.Add(1)

		go func(email, password string) {
			defer wg.Done()

			ok, err := a.Login(context.Background(), email, password)
			assert.NoError(t, err)
			assert.True(t, ok)
		}(acc.identity.Email, acc.password)
	}

	wg.Wait()

	s := a.Snapshot()
	require.Equal(t, StateAuthenticated, s.State)

	// memory and storage agree on the winner
	reloaded := newTestAuthority(t, storage)
	reloaded.Restore()
	assert.Equal(t, *s.Identity, *reloaded.Identity())
}

// countingCredentials records every lookup before delegating.
type countingCredentials struct {
	CredentialStore
	lookups int
}

func (c *countingCredentials) Lookup(ctx context.Context, email string) (Credential, error) {
	c.lookups++
	return c.CredentialStore.Lookup(ctx, email)
}

func TestLogin_EmptyFieldsVerifyDecoy(t *testing.T) {
	for _, fields := range [][2]string{{"", "admin123"}, {"admin@teca.org", ""}} {
		decoyOnce = sync.Once{}
		decoyHash = ""

		creds := &countingCredentials{CredentialStore: testCredentials(t)}
		a := NewAuthority(Config{Credentials: creds, Storage: newMemStorage(), Latency: -1})
		a.Restore()

		ok, err := a.Login(context.Background(), fields[0], fields[1])
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, creds.lookups)
		assert.NotEmpty(t, decoyHash, "empty field must still run a password verification")
	}
}
