package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/mock"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/96TSH/nutrimate/config"
	"github.com/96TSH/nutrimate/internal/auth"
	"github.com/96TSH/nutrimate/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mock Store ---
// Satisfies both the handlers Store interface and auth.AggregateStoreTx, so
// one double backs the whole request path.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockStore) GetCustomerByID(ctx context.Context, id uint) (*model.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*model.Customer)
	return customer, args.Error(1)
}

func (m *MockStore) GetCustomerByEmail(ctx context.Context, email string) (*model.Customer, error) {
	args := m.Called(ctx, email)
	customer, _ := args.Get(0).(*model.Customer)
	return customer, args.Error(1)
}

func (m *MockStore) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockStore) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]*model.Customer)
	return customers, args.Error(1)
}

func (m *MockStore) CreateCourse(ctx context.Context, course *model.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockStore) GetCourse(ctx context.Context, id uint) (*model.Course, error) {
	args := m.Called(ctx, id)
	course, _ := args.Get(0).(*model.Course)
	return course, args.Error(1)
}

func (m *MockStore) ListCourses(ctx context.Context) ([]*model.Course, error) {
	args := m.Called(ctx)
	courses, _ := args.Get(0).([]*model.Course)
	return courses, args.Error(1)
}

func (m *MockStore) UpdateCourse(ctx context.Context, course *model.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockStore) DeleteCourse(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) CreateRegistration(ctx context.Context, registration *model.CourseRegistration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

func (m *MockStore) ListRegistrationsByCustomer(ctx context.Context, customerID uint) ([]*model.CourseRegistration, error) {
	args := m.Called(ctx, customerID)
	registrations, _ := args.Get(0).([]*model.CourseRegistration)
	return registrations, args.Error(1)
}

func (m *MockStore) GetIdentity(ctx context.Context, username string) (*auth.Identity, error) {
	args := m.Called(ctx, username)
	identity, _ := args.Get(0).(*auth.Identity)
	return identity, args.Error(1)
}

func (m *MockStore) UpdatePassword(ctx context.Context, customerID uint, passwordHash string) error {
	args := m.Called(ctx, customerID, passwordHash)
	return args.Error(0)
}

func (m *MockStore) CreateResetToken(ctx context.Context, token *model.PasswordResetToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockStore) GetResetToken(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	args := m.Called(ctx, token)
	resetToken, _ := args.Get(0).(*model.PasswordResetToken)
	return resetToken, args.Error(1)
}

func (m *MockStore) InTx(ctx context.Context, f auth.TxF) error {
	return f(ctx, m)
}

// --- Mock Mailer ---
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func newTestService(db *MockStore, mailer *MockMailer) *Service {
	logger := zap.NewNop()
	cookieStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	return &Service{
		ServiceName:    "nutrimate-test",
		Config:         &config.Config{WebAppURL: "http://localhost:8080"},
		Logger:         logger,
		TracerProvider: sdktrace.NewTracerProvider(),
		Db:             db,
		Authenticator:  auth.NewAuthenticator(db, logger),
		Reset:          auth.NewResetService(db, logger),
		Mailer:         mailer,
		Sessions:       cookieStore,
		Rules:          auth.DefaultRouteRules(),
	}
}
