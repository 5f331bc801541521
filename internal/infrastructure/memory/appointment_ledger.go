package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/secourse/clinic-scheduler/internal/core/domain"
	"github.com/secourse/clinic-scheduler/internal/core/ports"
	"github.com/secourse/clinic-scheduler/internal/infrastructure/idgen"
)

var _ ports.AppointmentLedger = (*AppointmentLedger)(nil)

// AppointmentLedger is an in-memory ports.AppointmentLedger. Its counter
// belongs to the instance, so two ledgers number independently.
type AppointmentLedger struct {
	mu           sync.RWMutex
	appointments map[int]domain.Appointment
	seq          *idgen.Sequence
}

func NewAppointmentLedger() *AppointmentLedger {
	return &AppointmentLedger{
		appointments: make(map[int]domain.Appointment),
		seq:          idgen.NewSequence(),
	}
}

func (l *AppointmentLedger) Create(_ context.Context, patientID, doctorID int, start time.Time, status domain.AppointmentStatus) *domain.Appointment {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Sequence.Next never fails.
	id, _ := l.seq.Next(nil)
	appt := domain.Appointment{
		ID:        id,
		PatientID: patientID,
		DoctorID:  doctorID,
		StartTime: start,
		Status:    status,
	}
	l.appointments[id] = appt
	return &appt
}

func (l *AppointmentLedger) Get(_ context.Context, id int) (*domain.Appointment, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	appt, ok := l.appointments[id]
	if !ok {
		return nil, false
	}
	return &appt, true
}

func (l *AppointmentLedger) Update(_ context.Context, appointment *domain.Appointment) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.appointments[appointment.ID]; !ok {
		return fmt.Errorf("update appointment %d: %w", appointment.ID, domain.ErrNotFound)
	}
	l.appointments[appointment.ID] = *appointment
	return nil
}

func (l *AppointmentLedger) Delete(_ context.Context, id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.appointments[id]; !ok {
		return false
	}
	delete(l.appointments, id)
	return true
}

func (l *AppointmentLedger) List(_ context.Context) []*domain.Appointment {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*domain.Appointment, 0, len(l.appointments))
	for _, appt := range l.appointments {
		clone := appt
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
