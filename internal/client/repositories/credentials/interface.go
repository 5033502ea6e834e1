// Package credentials persists the session credential and the serialized
// user record in the client's local database. It is pure storage: no expiry
// checks, no remote calls.
package credentials

import (
	"context"

	"github.com/avoskan/taskdeck/internal/client/models"
)

// Credentials is what the store holds for one session: the bearer tokens
// and the user record they belong to.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	User         *models.User
}

// Repository is the durable slot storage for session credentials.
//
// Save and Clear touch all slots as one atomic unit: the store never ends up
// with a token but no user record, or the other way around. SaveUser is the
// single exception and rewrites only the user slot (profile edits keep the
// token untouched).
type Repository interface {
	Save(ctx context.Context, creds Credentials) error
	SaveUser(ctx context.Context, user *models.User) error
	Load(ctx context.Context) (Credentials, bool, error)
	AccessToken(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
