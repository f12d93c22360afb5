package auth

import (
	"context"

	"github.com/96TSH/nutrimate/internal/model"
)

type AggregateStoreTx interface {
	AggregateRepository
	Transactional
}

// AggregateRepository aggregates the stores the auth services depend on.
type AggregateRepository interface {
	CredentialStore
	TokenStore
}

// Transactional defines transaction methods.
type Transactional interface {
	InTx(context.Context, TxF) error
}
type TxF func(ctx context.Context, repo AggregateStoreTx) error

// CredentialStore loads and updates stored identities. Lookups return
// (nil, nil) when no record exists.
type CredentialStore interface {
	GetIdentity(ctx context.Context, username string) (*Identity, error)
	GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error)
	GetCustomerByID(ctx context.Context, id uint) (*model.Customer, error)
	UpdatePassword(ctx context.Context, customerID uint, passwordHash string) error
}

// TokenStore persists password-reset tokens keyed by token string.
type TokenStore interface {
	CreateResetToken(ctx context.Context, token *model.PasswordResetToken) error
	GetResetToken(ctx context.Context, token string) (*model.PasswordResetToken, error)
}
