// Package services contains the application services of the taskdeck client.
// This file defines the authentication service: register, login, logout, and
// the forced session teardown that the transport layer and the expiry
// watchdog both funnel into.
package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/avoskan/taskdeck/internal/client/api"
	"github.com/avoskan/taskdeck/internal/client/cache"
	"github.com/avoskan/taskdeck/internal/client/models"
	"github.com/avoskan/taskdeck/internal/client/repositories/credentials"
	"github.com/avoskan/taskdeck/internal/client/session"
	"github.com/avoskan/taskdeck/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account on the server and start a session with the
//     returned credential.
//   - Login: authenticate against the server and start a session.
//   - Logout: revoke the refresh token best-effort, then tear the local
//     session down unconditionally. Never returns an error and never leaves
//     the client half logged out.
//   - HandleUnauthorized: local-only teardown for a credential the server
//     already rejected.
//   - Rehydrate: restore a persisted session at process start.
type AuthService interface {
	Register(ctx context.Context, email, username string, password []byte, fullName string) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context)
	HandleUnauthorized(ctx context.Context)
	Rehydrate(ctx context.Context)
}

type authService struct {
	client  api.Client
	session *session.Manager
	store   credentials.Repository
	cache   *cache.Cache
	log     logging.Logger

	loggingOut atomic.Bool
}

func NewAuthService(client api.Client, sess *session.Manager, store credentials.Repository, c *cache.Cache, log logging.Logger) AuthService {
	return &authService{client: client, session: sess, store: store, cache: c, log: log}
}

func (a *authService) Register(ctx context.Context, email, username string, password []byte, fullName string) error {
	resp, err := a.client.Register(ctx, models.RegisterRequest{
		Email:    email,
		Username: username,
		Password: string(password),
		FullName: fullName,
	})
	if err != nil {
		return fmt.Errorf("register error: %w", err)
	}

	return a.session.Login(ctx, &resp.User, resp.Token.AccessToken, resp.Token.RefreshToken)
}

func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	resp, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	return a.session.Login(ctx, &resp.User, resp.Token.AccessToken, resp.Token.RefreshToken)
}

// Logout is the user-initiated variant: it asks the server to revoke the
// refresh token first, but a failed or unreachable server never blocks the
// local teardown.
func (a *authService) Logout(ctx context.Context) {
	a.teardown(ctx, true)
}

// HandleUnauthorized tears the session down without the revoke round-trip.
// It is registered as the transport's rejected-credential callback and is
// also what the expiry watchdog fires, so it must tolerate being invoked
// concurrently and when no session exists.
func (a *authService) HandleUnauthorized(ctx context.Context) {
	a.teardown(ctx, false)
}

func (a *authService) teardown(ctx context.Context, revoke bool) {
	// collapse concurrent teardowns: a revoke request travelling through
	// the authenticated transport can itself come back 401 and re-enter here
	if !a.loggingOut.CompareAndSwap(false, true) {
		return
	}
	defer a.loggingOut.Store(false)

	if revoke {
		if creds, ok, err := a.store.Load(ctx); err == nil && ok && creds.RefreshToken != "" {
			if err := a.client.Logout(ctx, creds.RefreshToken); err != nil {
				a.log.Warn(ctx, "server-side token revocation failed", "error", err)
			}
		}
	}

	a.cache.Purge()
	a.session.Logout(ctx)
}

func (a *authService) Rehydrate(ctx context.Context) {
	a.session.Rehydrate(ctx)
}
