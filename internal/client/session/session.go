// Package session holds the authoritative in-memory "current user" state.
// Everything else derives from it: the UI renders it, the watchdog arms and
// disarms on its transitions, and the credential store mirrors it durably.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/avoskan/taskdeck/internal/client/models"
	"github.com/avoskan/taskdeck/internal/client/repositories/credentials"
	"github.com/avoskan/taskdeck/internal/client/token"
	"github.com/avoskan/taskdeck/internal/logging"
)

// isExpired is a test seam for the token inspector.
var isExpired = token.IsExpired

// Manager owns the current session. The in-memory user and the persisted
// record always change together: Login and UpdateUser write the store
// first and only then replace the in-memory value, so a reader never sees
// one half of a session.
type Manager struct {
	mu       sync.RWMutex
	user     *models.User
	loading  bool
	onChange func(user *models.User)

	store credentials.Repository
	log   logging.Logger
}

func NewManager(store credentials.Repository, log logging.Logger) *Manager {
	return &Manager{
		store:   store,
		log:     log,
		loading: true,
	}
}

// OnChange registers the single subscriber notified after every session
// transition (login, logout, profile update, rehydration restore). Set once
// during bootstrap, before Rehydrate.
func (m *Manager) OnChange(fn func(user *models.User)) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

func (m *Manager) setUser(user *models.User) {
	m.mu.Lock()
	m.user = user
	fn := m.onChange
	m.mu.Unlock()

	if fn != nil {
		fn(user)
	}
}

// Login installs a new session: credential and user record are persisted as
// one unit, then the in-memory user is replaced. Calling it while another
// session is active simply replaces that session.
func (m *Manager) Login(ctx context.Context, user *models.User, accessToken, refreshToken string) error {
	if err := m.store.Save(ctx, credentials.Credentials{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}); err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	m.setUser(user)
	return nil
}

// Logout ends the session. The in-memory user is cleared even when the
// store cannot be cleared, and calling Logout while already logged out is
// a no-op.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear credential store on logout", "error", err)
	}
	m.setUser(nil)
}

// UpdateUser replaces the user record in memory and in the store. The
// credential slots are untouched, so the session survives profile edits
// without re-authentication.
func (m *Manager) UpdateUser(ctx context.Context, user *models.User) error {
	if err := m.store.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("update user error: %w", err)
	}

	m.setUser(user)
	return nil
}

// Rehydrate restores the session from the credential store, once, at
// process start. Anything short of a complete, unexpired session (missing
// token, missing user, expired or unparseable token, corrupt record) clears
// the store and leaves the process unauthenticated.
func (m *Manager) Rehydrate(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	creds, ok, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to load stored session, starting unauthenticated", "error", err)
		m.clearStore(ctx)
		return
	}
	if !ok {
		return
	}

	if creds.User == nil || creds.AccessToken == "" {
		// an orphaned half of a session is never trusted
		m.clearStore(ctx)
		return
	}

	if isExpired(creds.AccessToken) {
		m.log.Info(ctx, "stored access token expired, starting unauthenticated", "user", creds.User.Username)
		m.clearStore(ctx)
		return
	}

	m.log.Info(ctx, "session restored", "user", creds.User.Username)
	m.setUser(creds.User)
}

func (m *Manager) clearStore(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear credential store", "error", err)
	}
}

// CurrentUser returns the logged-in user, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// IsAuthenticated is derived state: a session exists iff a user does.
func (m *Manager) IsAuthenticated() bool {
	return m.CurrentUser() != nil
}

// Loading is true only while the one-time rehydration has not finished.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}
