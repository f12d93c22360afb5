package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/96TSH/nutrimate/internal/auth"
)

// Store embeds the gorm handle and provides the portal's persistence methods.
// It backs both the postgres and the sqlite configuration.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, f auth.TxF) error {
	tx := s.db.WithContext(ctx).Begin()
	err := tx.Error
	if err != nil {
		return err
	}
	defer tx.Rollback()
	agg := NewStore(tx)
	err = f(ctx, agg)
	if err != nil {
		return err
	}
	return tx.Commit().Error
}
