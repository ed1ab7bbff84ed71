package get_next_available

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	getNextAvailable "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_next_available"
)

const (
	msgInvalidBarberID  = "Invalid barber ID"
	msgInvalidServiceID = "Invalid service ID"
	msgMissingServiceID = "serviceId is required"
	msgBarberNotFound   = "Barber not found"
	msgServiceNotFound  = "Service not found"
	msgInvalidInput     = "Invalid request parameters"
)

type Handler struct {
	useCase GetNextAvailableUseCase
	logger  Logger
}

func NewHandler(useCase GetNextAvailableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/next-available
// Query params: serviceId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/next-available - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /barbers/{id}/next-available - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}
	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/next-available - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getNextAvailable.Request{
		BarberID:  barberID,
		ServiceID: serviceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getNextAvailable.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/next-available - Invalid input: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err, getNextAvailable.ErrInvalidInput)

		case errors.Is(err, getNextAvailable.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id}/next-available - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, getNextAvailable.ErrServiceNotFound):
			h.logger.Warn("GET /barbers/{id}/next-available - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /barbers/{id}/next-available - Failed to find next slot: barber_id=%d, service_id=%d, error=%v",
				barberID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /barbers/{id}/next-available - Search finished: barber_id=%d, service_id=%d, found=%t",
		barberID, serviceID, response.Found)
	handlers.RespondJSON(w, http.StatusOK, response)
}
