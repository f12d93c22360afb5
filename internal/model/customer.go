package model

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"gorm.io/gorm"
)

// EmailPattern is stricter than a general RFC 5322 matcher on purpose: the
// local part may not contain quoting or pipe characters.
var EmailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}$`)

type Address struct {
	Block    string `json:"block"`
	Street   string `json:"street"`
	Unit     string `json:"unit"`
	Building string `json:"building"`
	Postal   string `json:"postal"`
}

type Customer struct {
	gorm.Model
	FirstName    string  `json:"firstName" gorm:"not null"`
	LastName     string  `json:"lastName" gorm:"not null"`
	Email        string  `json:"email" gorm:"unique;not null"`
	Contact      string  `json:"contact"`
	Username     string  `json:"username" gorm:"unique;not null"`
	PasswordHash string  `json:"-" gorm:"not null"`
	Role         Role    `json:"role" gorm:"not null;default:user"`
	Address      Address `json:"address" gorm:"embedded;embeddedPrefix:address_"`
}

// Validate checks the persisted fields. Password rules apply to the
// plaintext before hashing and live on the inbound request type, not here.
func (c Customer) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.FirstName, validation.Required.Error("First Name is mandatory")),
		validation.Field(&c.LastName, validation.Required.Error("Last Name is mandatory")),
		validation.Field(&c.Email,
			validation.Required.Error("Valid Email is required"),
			validation.Match(EmailPattern).Error("Valid Email is required")),
		validation.Field(&c.Username, validation.Required.Error("User ID is required")),
		validation.Field(&c.Role, validation.Required, validation.By(validRole)),
	)
}

func validRole(value interface{}) error {
	role, _ := value.(Role)
	if !role.Valid() {
		return errors.New("must be a valid role")
	}
	return nil
}
