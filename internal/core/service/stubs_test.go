package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/secourse/clinic-scheduler/internal/core/domain"
	"github.com/secourse/clinic-scheduler/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub directory and ledger
// ---------------------------------------------------------------------------

type stubDirectory struct {
	byID      map[int]*domain.Account
	nextID    int
	updateErr error // if set, Update returns this error
	creates   int
}

func newStubDirectory() *stubDirectory {
	return &stubDirectory{byID: make(map[int]*domain.Account)}
}

func (d *stubDirectory) Create(_ context.Context, in ports.NewAccount) (*domain.Account, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	d.creates++
	acc := &domain.Account{
		ID:       d.nextID,
		Username: in.Username,
		Password: in.Password,
		Name:     in.Name,
		Email:    in.Email,
		Role:     role,
	}
	d.nextID++
	clone := *acc
	d.byID[acc.ID] = &clone
	return acc, nil
}

func (d *stubDirectory) Get(_ context.Context, id int) (*domain.Account, bool) {
	acc, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	clone := *acc
	return &clone, true
}

func (d *stubDirectory) Update(_ context.Context, account *domain.Account) error {
	if d.updateErr != nil {
		return d.updateErr
	}
	stored, ok := d.byID[account.ID]
	if !ok {
		return domain.ErrNotFound
	}
	role := stored.Role
	clone := *account
	clone.Role = role
	d.byID[account.ID] = &clone
	return nil
}

func (d *stubDirectory) Delete(_ context.Context, id int) bool {
	if _, ok := d.byID[id]; !ok {
		return false
	}
	delete(d.byID, id)
	return true
}

func (d *stubDirectory) List(_ context.Context) []*domain.Account {
	out := make([]*domain.Account, 0, len(d.byID))
	for _, acc := range d.byID {
		clone := *acc
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type stubLedger struct {
	byID      map[int]*domain.Appointment
	nextID    int
	updateErr error
	updates   int
}

func newStubLedger() *stubLedger {
	return &stubLedger{byID: make(map[int]*domain.Appointment)}
}

func (l *stubLedger) Create(_ context.Context, patientID, doctorID int, start time.Time, status domain.AppointmentStatus) *domain.Appointment {
	appt := &domain.Appointment{ID: l.nextID, PatientID: patientID, DoctorID: doctorID, StartTime: start, Status: status}
	l.nextID++
	clone := *appt
	l.byID[appt.ID] = &clone
	return appt
}

func (l *stubLedger) Get(_ context.Context, id int) (*domain.Appointment, bool) {
	appt, ok := l.byID[id]
	if !ok {
		return nil, false
	}
	clone := *appt
	return &clone, true
}

func (l *stubLedger) Update(_ context.Context, appointment *domain.Appointment) error {
	if l.updateErr != nil {
		return l.updateErr
	}
	if _, ok := l.byID[appointment.ID]; !ok {
		return domain.ErrNotFound
	}
	l.updates++
	clone := *appointment
	l.byID[appointment.ID] = &clone
	return nil
}

func (l *stubLedger) Delete(_ context.Context, id int) bool {
	if _, ok := l.byID[id]; !ok {
		return false
	}
	delete(l.byID, id)
	return true
}

func (l *stubLedger) List(_ context.Context) []*domain.Appointment {
	out := make([]*domain.Appointment, 0, len(l.byID))
	for _, appt := range l.byID {
		clone := *appt
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func validInput(role string) ports.CreateAccountInput {
	return ports.CreateAccountInput{
		Username: "testGuy123",
		Password: "tester7854",
		Name:     "John Doe",
		Email:    "testguy@testers.com",
		Role:     role,
	}
}

func withField(in ports.CreateAccountInput, field, value string) ports.CreateAccountInput {
	switch strings.ToLower(field) {
	case domain.FieldUsername:
		in.Username = value
	case domain.FieldPassword:
		in.Password = value
	case domain.FieldName:
		in.Name = value
	case domain.FieldEmail:
		in.Email = value
	}
	return in
}
