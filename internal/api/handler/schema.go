package handler

import (
	"time"

	"github.com/secourse/clinic-scheduler/internal/core/domain"
)

// --- Account request / response types ---

// createAccountRequest only checks presence of the role here; field rules
// live in the account validator so the HTTP and service paths agree.
type createAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role" validate:"required"`
}

type updateFieldRequest struct {
	Value *string `json:"value" validate:"required"`
}

type accountResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type fieldResponse struct {
	ID    int    `json:"id"`
	Field string `json:"field"`
	Value string `json:"value"`
}

type listAccountsResponse struct {
	Data []accountResponse `json:"data"`
}

// --- Appointment request / response types ---

type createAppointmentRequest struct {
	PatientID *int       `json:"patient_id" validate:"required,min=0"`
	DoctorID  *int       `json:"doctor_id"  validate:"required,min=0"`
	StartTime *time.Time `json:"start_time" validate:"required"`
}

type rescheduleRequest struct {
	StartTime *time.Time `json:"start_time" validate:"required"`
}

type appointmentResponse struct {
	ID        int       `json:"id"`
	PatientID int       `json:"patient_id"`
	DoctorID  int       `json:"doctor_id"`
	StartTime time.Time `json:"start_time"`
	Status    string    `json:"status"`
}

type listAppointmentsResponse struct {
	Data []appointmentResponse `json:"data"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:       a.ID,
		Username: a.Username,
		Name:     a.Name,
		Email:    a.Email,
		Role:     string(a.Role),
	}
}

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:        a.ID,
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
		StartTime: a.StartTime.UTC(),
		Status:    string(a.Status),
	}
}
