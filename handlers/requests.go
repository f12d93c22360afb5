package handlers

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/96TSH/nutrimate/internal/model"
)

// Violation messages match the portal's account-creation contract; the
// response carries them as a field-keyed set, not a concatenated string.

func passwordRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("Password is mandatory"),
		validation.Length(8, 0).Error("Password must be at least 8 characters"),
	}
}

func emailRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("Valid Email is required"),
		validation.Match(model.EmailPattern).Error("Valid Email is required"),
	}
}

type CreateCustomerRequest struct {
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	Contact   string        `json:"contact"`
	Username  string        `json:"username"`
	Password  string        `json:"password"`
	Address   model.Address `json:"address"`
}

func (r CreateCustomerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required.Error("First Name is mandatory")),
		validation.Field(&r.LastName, validation.Required.Error("Last Name is mandatory")),
		validation.Field(&r.Email, emailRules()...),
		validation.Field(&r.Username, validation.Required.Error("User ID is required")),
		validation.Field(&r.Password, passwordRules()...),
	)
}

type UpdateProfileRequest struct {
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Contact   string        `json:"contact"`
	Address   model.Address `json:"address"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required.Error("First Name is mandatory")),
		validation.Field(&r.LastName, validation.Required.Error("Last Name is mandatory")),
	)
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r ForgotPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules()...),
	)
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (r ResetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token, validation.Required.Error("token is required")),
		validation.Field(&r.Password, passwordRules()...),
	)
}

type CourseRequest struct {
	Title       string `json:"title"`
	Schedule    string `json:"schedule"`
	Description string `json:"description"`
	Cuisine     string `json:"cuisine"`
	Level       string `json:"level"`
}

func (r CourseRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("Title is mandatory")),
		validation.Field(&r.Schedule, validation.Required.Error("Schedule is mandatory")),
	)
}

type RegisterCourseRequest struct {
	// RegistrationDate is the chosen course date, formatted 2006-01-02.
	// Empty means today.
	RegistrationDate string `json:"registrationDate"`
}
