package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/96TSH/nutrimate/internal/model"
)

func (s *Store) CreateResetToken(ctx context.Context, token *model.PasswordResetToken) error {
	return s.db.WithContext(ctx).Create(token).Error
}

// GetResetToken looks a token up by exact string match. Returns (nil, nil)
// for unknown tokens.
func (s *Store) GetResetToken(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	var resetToken model.PasswordResetToken
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&resetToken).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resetToken, nil
}
