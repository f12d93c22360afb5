package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrAuthenticationFailed covers both unknown username and wrong password so
// callers cannot learn which part was wrong.
var ErrAuthenticationFailed = errors.New("authentication failed")

// Authenticator checks presented credentials against the credential store.
type Authenticator struct {
	store  AggregateStoreTx
	hasher Hasher
	logger *zap.Logger
}

func NewAuthenticator(store AggregateStoreTx, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		store:  store,
		logger: logger,
	}
}

// Authenticate verifies username/password and returns the matching identity.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	identity, err := a.store.GetIdentity(ctx, username)
	if err != nil {
		a.logger.Error("failed to look up identity", zap.Error(err))
		return nil, err
	}
	if identity == nil {
		return nil, ErrAuthenticationFailed
	}
	if !a.hasher.Verify(password, identity.PasswordHash) {
		return nil, ErrAuthenticationFailed
	}
	return identity, nil
}

// Lookup resolves an already-established login (session cookie) back to its
// identity without a password check. Returns (nil, nil) when the account no
// longer exists.
func (a *Authenticator) Lookup(ctx context.Context, username string) (*Identity, error) {
	identity, err := a.store.GetIdentity(ctx, username)
	if err != nil {
		a.logger.Error("failed to look up identity", zap.Error(err))
		return nil, err
	}
	return identity, nil
}
