package cancel_appointment

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingEmail       = "email is required"
	msgInvalidInput       = "Invalid input"
	msgNotFound           = "Appointment not found"
	msgForbidden          = "Email does not match this appointment"
	msgCannotCancel       = "Only confirmed appointments can be cancelled"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{code}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{code}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		h.logger.Warn("PATCH /appointments/{code}/cancel - Missing email: code=%s", code)
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	appointment, err := h.service.Cancel(r.Context(), code, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{code}/cancel - Invalid input: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err, appointments.ErrInvalidInput)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{code}/cancel - Appointment not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{code}/cancel - Email mismatch: code=%s", code)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{code}/cancel - Cannot cancel: code=%s", code)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/{code}/cancel - Failed to cancel appointment: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{code}/cancel - Appointment cancelled successfully: appointment_id=%d", appointment.ID)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
