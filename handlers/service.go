package handlers

import (
	"context"

	"github.com/gorilla/sessions"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/96TSH/nutrimate/config"
	"github.com/96TSH/nutrimate/internal/auth"
	"github.com/96TSH/nutrimate/internal/email"
	"github.com/96TSH/nutrimate/internal/model"
)

// Store is the persistence surface the handlers need. Satisfied by
// *store.Store; tests substitute a mock.
type Store interface {
	CreateCustomer(ctx context.Context, customer *model.Customer) error
	GetCustomerByID(ctx context.Context, id uint) (*model.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, customer *model.Customer) error
	ListCustomers(ctx context.Context) ([]*model.Customer, error)

	CreateCourse(ctx context.Context, course *model.Course) error
	GetCourse(ctx context.Context, id uint) (*model.Course, error)
	ListCourses(ctx context.Context) ([]*model.Course, error)
	UpdateCourse(ctx context.Context, course *model.Course) error
	DeleteCourse(ctx context.Context, id uint) error

	CreateRegistration(ctx context.Context, registration *model.CourseRegistration) error
	ListRegistrationsByCustomer(ctx context.Context, customerID uint) ([]*model.CourseRegistration, error)
}

// Service struct holds all variables common to all handlers.
// That is why members have to be safe for concurrent use and do not cause race conditions!
type Service struct {
	ServiceName    string
	Config         *config.Config
	Logger         *zap.Logger
	TracerProvider *trace.TracerProvider
	Db             Store
	Authenticator  *auth.Authenticator
	Reset          *auth.ResetService
	Hasher         auth.Hasher
	Mailer         email.Sender
	Sessions       sessions.Store
	Rules          auth.RouteRules
}
