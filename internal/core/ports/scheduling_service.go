package ports

import (
	"context"
	"time"

	"github.com/secourse/clinic-scheduler/internal/core/domain"
)

// SchedulingService defines use-case operations for appointments.
type SchedulingService interface {
	CreateAppointment(ctx context.Context, patientID, doctorID int, start time.Time) (*domain.Appointment, error)
	CancelAppointment(ctx context.Context, id int) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id int) error
	RescheduleAppointment(ctx context.Context, id int, start time.Time) (*domain.Appointment, error)
	GetAppointment(ctx context.Context, id int) (*domain.Appointment, error)
	ListAppointments(ctx context.Context) ([]*domain.Appointment, error)
}
