package create_exception

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/exceptions"
)

const (
	msgInvalidBarberID    = "Invalid barber ID"
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD"
	msgInvalidInput       = "Invalid input"
	msgBarberNotFound     = "Barber not found"
	msgAlreadyExists      = "This date is already closed"
)

type Handler struct {
	service ExceptionService
	logger  Logger
}

func NewHandler(service ExceptionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/barbers/{barberId}/exceptions
// barberId = 0 закрывает дату для всего салона
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil || barberID < 0 {
		h.logger.Warn("POST /admin/barbers/{id}/exceptions - Invalid barber ID: %q", mux.Vars(r)["barberId"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	var req CreateExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/barbers/{id}/exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(barberID)
	if err != nil {
		h.logger.Warn("POST /admin/barbers/{id}/exceptions - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	created, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, exceptions.ErrInvalidInput):
			h.logger.Warn("POST /admin/barbers/{id}/exceptions - Invalid input: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err, exceptions.ErrInvalidInput)

		case errors.Is(err, exceptions.ErrBarberNotFound):
			h.logger.Warn("POST /admin/barbers/{id}/exceptions - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, exceptions.ErrAlreadyExists):
			h.logger.Warn("POST /admin/barbers/{id}/exceptions - Already closed: barber_id=%d, date=%s", barberID, req.Date)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /admin/barbers/{id}/exceptions - Failed to create exception: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/barbers/{id}/exceptions - Exception created: id=%d, barber_id=%d, date=%s",
		created.ID, barberID, created.Date)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
