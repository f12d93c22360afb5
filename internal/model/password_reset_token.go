package model

import (
	"time"

	"gorm.io/gorm"
)

// PasswordResetToken is a time-bounded credential-recovery artifact bound to
// one customer. Usability is decided by ExpiresAt alone; tokens are never
// marked consumed and several live tokens may exist for the same customer.
type PasswordResetToken struct {
	gorm.Model
	Token      string    `gorm:"unique;not null"`
	CustomerID uint      `gorm:"index;not null"`
	ExpiresAt  time.Time `gorm:"not null"`
}
