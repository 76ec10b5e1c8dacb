package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultStorageKey is the storage key holding the serialized identity.
	DefaultStorageKey = "teca_admin_user"

	// DefaultLoginLatency is the simulated round trip of a login request.
	DefaultLoginLatency = time.Second
)

// State is the lifecycle state of a Session.
type State int

const (
	// StateUninitialized is the state before Restore ran.
	StateUninitialized State = iota
	// StateLoading means the session is being restored or a login is in flight.
	StateLoading
	// StateAuthenticated means an Identity is present.
	StateAuthenticated
	// StateAnonymous means no Identity is present.
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session is an immutable snapshot of the authentication state.
type Session struct {
	State    State
	Identity *Identity
}

// Loading reports whether the session has not settled yet.
func (s Session) Loading() bool {
	return s.State == StateUninitialized || s.State == StateLoading
}

// Authenticated reports whether an identity is present and the session settled.
func (s Session) Authenticated() bool {
	return s.State == StateAuthenticated && s.Identity != nil
}

// Storage is the durable key/value store the identity is mirrored into.
// fiber.Storage implementations satisfy it.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte, exp time.Duration) error
	Delete(key string) error
}

// Config configures an Authority.
type Config struct {
	// Credentials is the credential table used by Login.
	Credentials CredentialStore

	// Storage holds the serialized identity.
	Storage Storage

	// Key is the storage key. Default: DefaultStorageKey
	Key string

	// Expiry is passed to Storage.Set. Zero means no expiry.
	Expiry time.Duration

	// Permissions maps roles to permission sets. Default: DefaultPermissionTable()
	Permissions PermissionTable

	// Latency is the simulated login round trip. Negative disables it.
	// Default: DefaultLoginLatency
	Latency time.Duration
}

func configDefault(cfg Config) Config {
	if cfg.Key == "" {
		cfg.Key = DefaultStorageKey
	}

	if cfg.Permissions == nil {
		cfg.Permissions = DefaultPermissionTable()
	}

	if cfg.Latency == 0 {
		cfg.Latency = DefaultLoginLatency
	}

	return cfg
}

// Authority owns the session of one browser. It is safe for concurrent use;
// overlapping logins are serialized and the last one to finish wins.
type Authority struct {
	cfg Config

	mu       sync.Mutex
	current  Session
	settled  Session // last session outside of a login
	inFlight int

	subMu       sync.Mutex
	subscribers map[int]func(Session)
	nextSub     int
}

// NewAuthority creates an Authority in the UNINITIALIZED state.
func NewAuthority(cfg Config) *Authority {
	return &Authority{
		cfg:         configDefault(cfg),
		current:     Session{State: StateUninitialized},
		settled:     Session{State: StateUninitialized},
		subscribers: make(map[int]func(Session)),
	}
}

// Snapshot returns the current session.
func (a *Authority) Snapshot() Session {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.current
}

// Identity returns the current identity or nil.
func (a *Authority) Identity() *Identity {
	return a.Snapshot().Identity
}

// Subscribe registers fn to be called after every state transition.
// The returned function removes the subscription.
func (a *Authority) Subscribe(fn func(Session)) func() {
	a.subMu.Lock()
	defer a.subMu.Unlock()

	id := a.nextSub
	a.nextSub++
	a.subscribers[id] = fn

	return func() {
		a.subMu.Lock()
		defer a.subMu.Unlock()

		delete(a.subscribers, id)
	}
}

func (a *Authority) notify(s Session) {
	a.subMu.Lock()
	fns := make([]func(Session), 0, len(a.subscribers))

	for _, fn := range a.subscribers {
		fns = append(fns, fn)
	}
	a.subMu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// Restore reads the stored identity. Corrupt entries are deleted and the
// session degrades to anonymous; no error is returned.
func (a *Authority) Restore() {
	a.mu.Lock()
	a.current = Session{State: StateLoading, Identity: a.current.Identity}
	loading := a.current
	a.mu.Unlock()
	a.notify(loading)

	restored := a.readStored()

	a.mu.Lock()
	a.settled = restored
	if a.inFlight == 0 {
		a.current = restored
	}
	out := a.current
	a.mu.Unlock()

	a.notify(out)
}

func (a *Authority) readStored() Session {
	anonymous := Session{State: StateAnonymous}

	if a.cfg.Storage == nil {
		log.Error().Err(ErrNoStorage).Msg("cannot restore session")
		return anonymous
	}

	raw, err := a.cfg.Storage.Get(a.cfg.Key)
	if err != nil {
		log.Error().Err(err).Str("key", a.cfg.Key).Msg("failed to read stored identity")
		return anonymous
	}

	if len(raw) == 0 {
		return anonymous
	}

	identity, err := UnmarshalIdentity(raw)
	if err != nil {
		log.Warn().Err(err).Str("key", a.cfg.Key).Msg("discarding corrupt stored identity")

		if errDel := a.cfg.Storage.Delete(a.cfg.Key); errDel != nil {
			log.Error().Err(errDel).Str("key", a.cfg.Key).Msg("failed to delete corrupt stored identity")
		}

		return anonymous
	}

	return Session{State: StateAuthenticated, Identity: identity}
}

// Login checks email and password against the credential table. It returns
// false for every combination that does not exactly match an entry, without
// telling which part was wrong. The error is reserved for infrastructure
// failures and for ctx ending during the simulated round trip.
func (a *Authority) Login(ctx context.Context, email, password string) (bool, error) {
	a.beginLogin()

	identity, err := a.authenticate(ctx, email, password)
	if err != nil || identity == nil {
		a.endLogin(nil)
		return false, err
	}

	if err := a.endLogin(identity); err != nil {
		return false, err
	}

	log.Info().Str("user_id", identity.ID).Str("role", identity.Role.String()).Msg("login succeeded")

	return true, nil
}

func (a *Authority) beginLogin() {
	a.mu.Lock()
	if a.inFlight == 0 && !a.current.Loading() {
		a.settled = a.current
	}

	a.inFlight++
	a.current = Session{State: StateLoading, Identity: a.settled.Identity}
	s := a.current
	a.mu.Unlock()

	a.notify(s)
}

// endLogin settles a login. A nil identity keeps the previously settled session.
// The identity is persisted under the lock so memory and storage agree on the
// last login to finish.
func (a *Authority) endLogin(identity *Identity) error {
	a.mu.Lock()
	a.inFlight--

	var err error

	if identity != nil {
		if err = a.persist(identity); err == nil {
			a.settled = Session{State: StateAuthenticated, Identity: identity}
		}
	}

	if a.settled.State == StateUninitialized {
		a.settled = Session{State: StateAnonymous}
	}

	if a.inFlight == 0 {
		a.current = a.settled
	}
	s := a.current
	a.mu.Unlock()

	a.notify(s)

	return err
}

func (a *Authority) authenticate(ctx context.Context, email, password string) (*Identity, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	if a.cfg.Credentials == nil {
		return nil, nil
	}

	if email == "" || password == "" {
		burnVerify(password)
		return nil, nil
	}

	cred, err := a.cfg.Credentials.Lookup(ctx, email)
	if errors.Is(err, ErrCredentialNotFound) {
		burnVerify(password)
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("lookup credential: %w", err)
	}

	// stores backed by case-insensitive collations may return a near match
	if cred.Identity.Email != email {
		burnVerify(password)
		return nil, nil
	}

	if !VerifyPassword(password, cred.PasswordHash) {
		return nil, nil
	}

	identity := cred.Identity

	return &identity, nil
}

func (a *Authority) wait(ctx context.Context) error {
	if a.cfg.Latency <= 0 {
		return nil
	}

	t := time.NewTimer(a.cfg.Latency)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *Authority) persist(identity *Identity) error {
	if a.cfg.Storage == nil {
		return ErrNoStorage
	}

	raw, err := MarshalIdentity(identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	if err := a.cfg.Storage.Set(a.cfg.Key, raw, a.cfg.Expiry); err != nil {
		return fmt.Errorf("store identity: %w", err)
	}

	return nil
}

// Logout clears the identity and deletes the storage entry. Logging out an
// anonymous session is a no-op apart from the delete.
func (a *Authority) Logout() {
	a.mu.Lock()
	a.settled = Session{State: StateAnonymous}
	a.current = a.settled

	if a.cfg.Storage != nil {
		if err := a.cfg.Storage.Delete(a.cfg.Key); err != nil {
			log.Error().Err(err).Str("key", a.cfg.Key).Msg("failed to delete stored identity")
		}
	}
	s := a.current
	a.mu.Unlock()

	a.notify(s)
}

// HasPermission reports whether the current identity is granted token.
func (a *Authority) HasPermission(token string) bool {
	s := a.Snapshot()
	if s.Identity == nil {
		return false
	}

	return a.cfg.Permissions.Allows(s.Identity.Role, token)
}

// Permissions returns the permission set of the current identity.
func (a *Authority) Permissions() PermissionSet {
	s := a.Snapshot()
	if s.Identity == nil {
		return nil
	}

	return a.cfg.Permissions.Resolve(s.Identity.Role)
}

// Evaluate applies the route guard rules to the current session.
func (a *Authority) Evaluate(required string) Decision {
	return Evaluate(a.Snapshot(), a.cfg.Permissions, required)
}
