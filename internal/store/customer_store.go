package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/96TSH/nutrimate/internal/auth"
	"github.com/96TSH/nutrimate/internal/errorsx"
	"github.com/96TSH/nutrimate/internal/model"
)

func (s *Store) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Create(customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorsx.NewConflictError(errors.New("an account with this email or user id already exists"))
		}
		return err
	}
	return nil
}

// GetIdentity loads the authentication view of a customer by username.
// Returns (nil, nil) when no such account exists.
func (s *Store) GetIdentity(ctx context.Context, username string) (*auth.Identity, error) {
	var customer model.Customer
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &auth.Identity{
		CustomerID:   customer.ID,
		Username:     customer.Username,
		PasswordHash: customer.PasswordHash,
		Role:         customer.Role,
	}, nil
}

func (s *Store) GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customer model.Customer
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *Store) GetCustomerByID(ctx context.Context, id uint) (*model.Customer, error) {
	var customer model.Customer
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *Store) UpdatePassword(ctx context.Context, customerID uint, passwordHash string) error {
	return s.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ?", customerID).
		Update("password_hash", passwordHash).Error
}

func (s *Store) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Save(customer).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorsx.NewConflictError(errors.New("an account with this email or user id already exists"))
	}
	return err
}

func (s *Store) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	var customers []*model.Customer
	err := s.db.WithContext(ctx).Order("id").Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}
