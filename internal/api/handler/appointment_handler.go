package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secourse/clinic-scheduler/internal/api/metrics"
	"github.com/secourse/clinic-scheduler/internal/core/ports"
)

// AppointmentHandler serves appointment booking over HTTP.
type AppointmentHandler struct {
	service ports.SchedulingService
}

func NewAppointmentHandler(service ports.SchedulingService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Create handles POST /v1/appointments.
//
// @Summary      Book an appointment between a patient and a doctor
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body      createAppointmentRequest  true  "Patient, doctor and start time"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	appt, err := h.service.CreateAppointment(c.Request().Context(), *req.PatientID, *req.DoctorID, *req.StartTime)
	if err != nil {
		return err
	}

	metrics.AppointmentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toAppointmentResponse(appt))
}

// Get handles GET /v1/appointments/:id.
//
// @Summary      Show an appointment
// @Tags         appointments
// @Produce      json
// @Param        id   path      int  true  "Appointment id"
// @Success      200  {object}  appointmentResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	appt, err := h.service.GetAppointment(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

// List handles GET /v1/appointments.
func (h *AppointmentHandler) List(c echo.Context) error {
	appts, err := h.service.ListAppointments(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listAppointmentsResponse{Data: make([]appointmentResponse, 0, len(appts))}
	for _, appt := range appts {
		resp.Data = append(resp.Data, toAppointmentResponse(appt))
	}
	return c.JSON(http.StatusOK, resp)
}

// Cancel handles POST /v1/appointments/:id/cancel.
//
// @Summary      Cancel an active appointment
// @Tags         appointments
// @Produce      json
// @Param        id   path      int  true  "Appointment id"
// @Success      200  {object}  appointmentResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	appt, err := h.service.CancelAppointment(c.Request().Context(), id)
	if err != nil {
		return err
	}

	metrics.AppointmentsCancelledTotal.Inc()
	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

// Reschedule handles PUT /v1/appointments/:id/start-time.
//
// @Summary      Move an appointment to a new start time
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Appointment id"
// @Param        body  body      rescheduleRequest  true  "New start time"
// @Success      200   {object}  appointmentResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/appointments/{id}/start-time [put]
func (h *AppointmentHandler) Reschedule(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req rescheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	appt, err := h.service.RescheduleAppointment(c.Request().Context(), id, *req.StartTime)
	if err != nil {
		return err
	}

	metrics.AppointmentsRescheduledTotal.Inc()
	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

// Delete handles DELETE /v1/appointments/:id.
//
// @Summary      Delete an appointment
// @Tags         appointments
// @Param        id   path  int  true  "Appointment id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAppointment(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.AppointmentsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
