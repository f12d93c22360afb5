package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/96TSH/nutrimate/internal/errorsx"
	"github.com/96TSH/nutrimate/internal/model"
)

// TokenValidity is the fixed window between issuing a reset token and its
// expiry.
const TokenValidity = 24 * time.Hour

const (
	MsgInvalidToken = "Invalid Token"
	MsgExpiredToken = "Expired Token"
)

// TokenStatus is the outcome of validating a reset token.
type TokenStatus int

const (
	TokenValid TokenStatus = iota
	TokenInvalid
	TokenExpired
)

// ResetService issues and validates password-reset tokens and performs the
// final password change. Token usability is a pure function of expiry against
// the current time: tokens are not marked consumed, and several live tokens
// for one customer validate independently.
type ResetService struct {
	store  AggregateStoreTx
	hasher Hasher
	logger *zap.Logger
	now    func() time.Time
}

func NewResetService(store AggregateStoreTx, logger *zap.Logger) *ResetService {
	return &ResetService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Issue generates a fresh token for the customer, persists it with a
// TokenValidity expiry and returns the token string. Mail delivery is the
// caller's responsibility.
func (s *ResetService) Issue(ctx context.Context, customer *model.Customer) (string, error) {
	token := uuid.NewString()
	err := s.store.CreateResetToken(ctx, &model.PasswordResetToken{
		Token:      token,
		CustomerID: customer.ID,
		ExpiresAt:  s.now().Add(TokenValidity),
	})
	if err != nil {
		s.logger.Error("failed to create password reset token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Validate looks the token up by exact string match. Unknown or malformed
// strings are TokenInvalid with a nil error; a store failure is returned as an
// error so callers can tell an outage apart from a bad token.
func (s *ResetService) Validate(ctx context.Context, token string) (TokenStatus, error) {
	resetToken, err := s.store.GetResetToken(ctx, token)
	if err != nil {
		s.logger.Error("failed to get password reset token", zap.Error(err))
		return TokenInvalid, err
	}
	if resetToken == nil {
		return TokenInvalid, nil
	}
	if resetToken.ExpiresAt.Before(s.now()) {
		return TokenExpired, nil
	}
	return TokenValid, nil
}

// ResolveOwner returns the customer the token is bound to, regardless of
// expiry. Callers must Validate first.
func (s *ResetService) ResolveOwner(ctx context.Context, token string) (*model.Customer, error) {
	resetToken, err := s.store.GetResetToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if resetToken == nil {
		return nil, nil
	}
	return s.store.GetCustomerByID(ctx, resetToken.CustomerID)
}

// ChangePassword re-hashes the plaintext. Pure transform; the caller persists
// the result onto the owning customer.
func (s *ResetService) ChangePassword(plaintext string) (string, error) {
	return s.hasher.Hash(plaintext)
}

// SubmitReset validates the token, resolves its owner and persists the new
// password hash. The owner lookup and the hash write run in one transaction.
func (s *ResetService) SubmitReset(ctx context.Context, token, newPassword string) error {
	status, err := s.Validate(ctx, token)
	if err != nil {
		return err
	}
	switch status {
	case TokenInvalid:
		return errorsx.NewBadRequestError(errors.New(MsgInvalidToken))
	case TokenExpired:
		return errorsx.NewBadRequestError(errors.New(MsgExpiredToken))
	}

	hash, err := s.ChangePassword(newPassword)
	if err != nil {
		s.logger.Error("failed to hash new password", zap.Error(err))
		return err
	}

	return s.store.InTx(ctx, func(ctx context.Context, repo AggregateStoreTx) error {
		resetToken, err := repo.GetResetToken(ctx, token)
		if err != nil {
			return err
		}
		if resetToken == nil {
			return errorsx.NewBadRequestError(errors.New(MsgInvalidToken))
		}
		return repo.UpdatePassword(ctx, resetToken.CustomerID, hash)
	})
}
