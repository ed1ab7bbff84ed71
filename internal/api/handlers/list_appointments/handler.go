package list_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
)

const (
	msgInvalidBarberID = "Invalid barber ID"
	msgInvalidParams   = "Invalid query parameters"
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

// Handle GET /api/v1/admin/barbers/{barberId}/appointments
// Query params: date, status, includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/barbers/{id}/appointments - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	q := r.URL.Query()
	serviceReq, err := ToServiceRequest(barberID, q.Get("date"), q.Get("status"), q.Get("includeCancelled"))
	if err != nil {
		h.logger.Warn("GET /admin/barbers/{id}/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListByBarber(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/barbers/{id}/appointments - Invalid input: %v", err)
			handlers.RespondValidationError(w, msgInvalidParams, err, appointments.ErrInvalidInput)

		default:
			h.logger.Error("GET /admin/barbers/{id}/appointments - Failed to list appointments: barber_id=%d, error=%v",
				barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/barbers/{id}/appointments - Appointments retrieved successfully: barber_id=%d, count=%d",
		barberID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
