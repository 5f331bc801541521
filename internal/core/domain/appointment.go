package domain

import "time"

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusActive    AppointmentStatus = "active"
	StatusCancelled AppointmentStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions.
// Cancelled is terminal.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusActive: {StatusCancelled},
}

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a scheduled meeting between one patient and one doctor.
// PatientID and DoctorID are keys into the account directory; the
// appointment does not own those accounts.
type Appointment struct {
	ID        int               `json:"id"`
	PatientID int               `json:"patient_id"`
	DoctorID  int               `json:"doctor_id"`
	StartTime time.Time         `json:"start_time"`
	Status    AppointmentStatus `json:"status"`
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}
