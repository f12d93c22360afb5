package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	Title       string `json:"title" gorm:"unique;not null"`
	Schedule    string `json:"schedule" gorm:"not null"`
	Description string `json:"description"`
	Cuisine     string `json:"cuisine"`
	Level       string `json:"level"`
}

func (c Course) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required.Error("Title is mandatory")),
		validation.Field(&c.Schedule, validation.Required.Error("Schedule is mandatory")),
	)
}

// CourseRegistration links a customer to a course for a chosen date.
type CourseRegistration struct {
	gorm.Model
	CustomerID       uint      `json:"customerId" gorm:"index;not null"`
	CourseID         uint      `json:"courseId" gorm:"index;not null"`
	RegistrationDate time.Time `json:"registrationDate" gorm:"not null"`
}
