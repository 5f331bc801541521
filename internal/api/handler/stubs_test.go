package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/secourse/clinic-scheduler/internal/core/domain"
	"github.com/secourse/clinic-scheduler/internal/core/ports"
)

type stubAccountService struct {
	createFn      func(ctx context.Context, in ports.CreateAccountInput) (*domain.Account, error)
	getFn         func(ctx context.Context, id int) (*domain.Account, error)
	listFn        func(ctx context.Context) ([]*domain.Account, error)
	fieldFn       func(ctx context.Context, id int, field string) (string, error)
	updateFieldFn func(ctx context.Context, id int, field, value string) (*domain.Account, error)
	deleteFn      func(ctx context.Context, id int) error
}

func (s *stubAccountService) CreateAccount(ctx context.Context, in ports.CreateAccountInput) (*domain.Account, error) {
	return s.createFn(ctx, in)
}

func (s *stubAccountService) GetAccount(ctx context.Context, id int) (*domain.Account, error) {
	return s.getFn(ctx, id)
}

func (s *stubAccountService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.listFn(ctx)
}

func (s *stubAccountService) UpdateAccount(context.Context, *domain.Account) error {
	return nil
}

func (s *stubAccountService) Field(ctx context.Context, id int, field string) (string, error) {
	return s.fieldFn(ctx, id, field)
}

func (s *stubAccountService) UpdateField(ctx context.Context, id int, field, value string) (*domain.Account, error) {
	return s.updateFieldFn(ctx, id, field, value)
}

func (s *stubAccountService) DeleteAccount(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

type stubSchedulingService struct {
	createFn     func(ctx context.Context, patientID, doctorID int, start time.Time) (*domain.Appointment, error)
	cancelFn     func(ctx context.Context, id int) (*domain.Appointment, error)
	deleteFn     func(ctx context.Context, id int) error
	rescheduleFn func(ctx context.Context, id int, start time.Time) (*domain.Appointment, error)
	getFn        func(ctx context.Context, id int) (*domain.Appointment, error)
	listFn       func(ctx context.Context) ([]*domain.Appointment, error)
}

func (s *stubSchedulingService) CreateAppointment(ctx context.Context, patientID, doctorID int, start time.Time) (*domain.Appointment, error) {
	return s.createFn(ctx, patientID, doctorID, start)
}

func (s *stubSchedulingService) CancelAppointment(ctx context.Context, id int) (*domain.Appointment, error) {
	return s.cancelFn(ctx, id)
}

func (s *stubSchedulingService) DeleteAppointment(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func (s *stubSchedulingService) RescheduleAppointment(ctx context.Context, id int, start time.Time) (*domain.Appointment, error) {
	return s.rescheduleFn(ctx, id, start)
}

func (s *stubSchedulingService) GetAppointment(ctx context.Context, id int) (*domain.Appointment, error) {
	return s.getFn(ctx, id)
}

func (s *stubSchedulingService) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	return s.listFn(ctx)
}

// newContext builds an echo context with the request validator installed and
// the given path parameters bound.
func newContext(t *testing.T, method, target string, body io.Reader, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	if len(params)%2 != 0 {
		t.Fatalf("params must be name/value pairs")
	}

	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

// httpCode returns the status carried by an *echo.HTTPError, or 0.
func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}
