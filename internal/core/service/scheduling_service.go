package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/secourse/clinic-scheduler/internal/core/domain"
	"github.com/secourse/clinic-scheduler/internal/core/ports"
)

var _ ports.SchedulingService = (*SchedulingService)(nil)

// SchedulingService checks account references and status transitions before
// writing to the appointment ledger.
type SchedulingService struct {
	accounts ports.AccountDirectory
	ledger   ports.AppointmentLedger
	mu       *sync.Mutex
	logger   zerolog.Logger
}

func NewSchedulingService(accounts ports.AccountDirectory, ledger ports.AppointmentLedger, logger zerolog.Logger, opts ...Option) *SchedulingService {
	o := buildOptions(opts)
	return &SchedulingService{
		accounts: accounts,
		ledger:   ledger,
		mu:       o.lock,
		logger:   logger,
	}
}

// CreateAppointment resolves both accounts and checks their roles before
// anything is written. The new appointment starts Active.
func (s *SchedulingService) CreateAppointment(ctx context.Context, patientID, doctorID int, start time.Time) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireRole(ctx, patientID, domain.RolePatient); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	if err := s.requireRole(ctx, doctorID, domain.RoleDoctor); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	appt := s.ledger.Create(ctx, patientID, doctorID, start, domain.StatusActive)

	s.logger.Info().
		Int("appointment_id", appt.ID).
		Int("patient_id", patientID).
		Int("doctor_id", doctorID).
		Time("start_time", start).
		Msg("appointment created")
	return appt, nil
}

func (s *SchedulingService) requireRole(ctx context.Context, id int, role domain.Role) error {
	acc, ok := s.accounts.Get(ctx, id)
	if !ok {
		return &domain.InvalidIDError{Kind: domain.KindAccount, ID: id}
	}
	if acc.Role != role {
		return &domain.InvalidIDError{Kind: domain.KindAccount, ID: id, Reason: "is not a " + string(role)}
	}
	return nil
}

// CancelAppointment moves an Active appointment to Cancelled. Cancelling a
// cancelled appointment fails with domain.ErrAlreadyCancelled every time.
func (s *SchedulingService) CancelAppointment(ctx context.Context, id int) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, err := s.resolve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel appointment: %w", err)
	}
	if !appt.Status.CanTransitionTo(domain.StatusCancelled) {
		return nil, fmt.Errorf("cancel appointment %d: %w", id, domain.ErrAlreadyCancelled)
	}

	appt.Status = domain.StatusCancelled
	if err := s.ledger.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("cancel appointment: %w", err)
	}

	s.logger.Info().Int("appointment_id", id).Str("status", string(appt.Status)).Msg("appointment cancelled")
	return appt, nil
}

// DeleteAppointment removes the appointment whatever its status.
func (s *SchedulingService) DeleteAppointment(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.resolve(ctx, id); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	s.ledger.Delete(ctx, id)

	s.logger.Info().Int("appointment_id", id).Msg("appointment deleted")
	return nil
}

// RescheduleAppointment sets a new start time. Cancelled appointments may be
// rescheduled too; their status is left unchanged.
func (s *SchedulingService) RescheduleAppointment(ctx context.Context, id int, start time.Time) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, err := s.resolve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}

	appt.StartTime = start
	if err := s.ledger.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}

	s.logger.Info().Int("appointment_id", id).Time("start_time", start).Msg("appointment rescheduled")
	return appt, nil
}

func (s *SchedulingService) GetAppointment(ctx context.Context, id int) (*domain.Appointment, error) {
	return s.resolve(ctx, id)
}

func (s *SchedulingService) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	return s.ledger.List(ctx), nil
}

func (s *SchedulingService) resolve(ctx context.Context, id int) (*domain.Appointment, error) {
	appt, ok := s.ledger.Get(ctx, id)
	if !ok {
		return nil, &domain.InvalidIDError{Kind: domain.KindAppointment, ID: id}
	}
	return appt, nil
}
