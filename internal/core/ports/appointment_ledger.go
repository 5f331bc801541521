package ports

import (
	"context"
	"time"

	"github.com/secourse/clinic-scheduler/internal/core/domain"
)

// AppointmentLedger owns the set of appointments. Identities are assigned
// sequentially from 0 and never reused, even after deletion.
type AppointmentLedger interface {
	Create(ctx context.Context, patientID, doctorID int, start time.Time, status domain.AppointmentStatus) *domain.Appointment
	// Get reports false when no appointment holds id.
	Get(ctx context.Context, id int) (*domain.Appointment, bool)
	// Update replaces the record with appointment.ID, failing with
	// domain.ErrNotFound when it is gone.
	Update(ctx context.Context, appointment *domain.Appointment) error
	Delete(ctx context.Context, id int) bool
	List(ctx context.Context) []*domain.Appointment
}
