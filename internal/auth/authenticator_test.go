package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/96TSH/nutrimate/internal/model"
)

func TestAuthenticator_Authenticate(t *testing.T) {
	ctx := context.Background()

	var hasher Hasher
	hash, err := hasher.Hash("ironman")
	require.NoError(t, err)

	mockStore := new(MockStore)
	mockStore.On("GetIdentity", ctx, "tonny").
		Return(&Identity{CustomerID: 1, Username: "tonny", PasswordHash: hash, Role: model.RoleUser}, nil)

	authenticator := NewAuthenticator(mockStore, zap.NewNop())

	identity, err := authenticator.Authenticate(ctx, "tonny", "ironman")
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, uint(1), identity.CustomerID)
	assert.Equal(t, model.RoleUser, identity.Role)
}

func TestAuthenticator_Authenticate_WrongPassword(t *testing.T) {
	ctx := context.Background()

	var hasher Hasher
	hash, err := hasher.Hash("ironman")
	require.NoError(t, err)

	mockStore := new(MockStore)
	mockStore.On("GetIdentity", ctx, "tonny").
		Return(&Identity{CustomerID: 1, Username: "tonny", PasswordHash: hash, Role: model.RoleUser}, nil)

	authenticator := NewAuthenticator(mockStore, zap.NewNop())

	identity, err := authenticator.Authenticate(ctx, "tonny", "hulky")
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthenticator_Authenticate_UnknownUser(t *testing.T) {
	ctx := context.Background()

	mockStore := new(MockStore)
	mockStore.On("GetIdentity", ctx, "nobody").Return(nil, nil)

	authenticator := NewAuthenticator(mockStore, zap.NewNop())

	identity, err := authenticator.Authenticate(ctx, "nobody", "whatever")
	assert.Nil(t, identity)
	// Same error as a wrong password: the caller cannot tell which part failed.
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthenticator_Lookup(t *testing.T) {
	ctx := context.Background()

	mockStore := new(MockStore)
	mockStore.On("GetIdentity", ctx, "tonny").
		Return(&Identity{CustomerID: 1, Username: "tonny", Role: model.RoleAdmin}, nil)
	mockStore.On("GetIdentity", ctx, "gone").Return(nil, nil)

	authenticator := NewAuthenticator(mockStore, zap.NewNop())

	identity, err := authenticator.Lookup(ctx, "tonny")
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, model.RoleAdmin, identity.Role)

	identity, err = authenticator.Lookup(ctx, "gone")
	require.NoError(t, err)
	assert.Nil(t, identity)
}
