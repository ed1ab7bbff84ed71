package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_availability"
)

const (
	msgInvalidBarberID  = "Invalid barber ID"
	msgInvalidServiceID = "Invalid service ID"
	msgMissingServiceID = "serviceId is required"
	msgMissingDate      = "date is required"
	msgInvalidDate      = "Invalid date format, expected YYYY-MM-DD"
	msgDateInPast       = "Cannot check availability for past dates"
	msgDateTooFar       = "Date is too far in the future"
	msgBarberNotFound   = "Barber not found"
	msgServiceNotFound  = "Service not found"
	msgInvalidInput     = "Invalid request parameters"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{barberId}/availability
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/availability - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /barbers/{id}/availability - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}
	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/availability - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /barbers/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(barberID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /barbers/{id}/availability - Invalid input: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err, getAvailability.ErrInvalidInput)

		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /barbers/{id}/availability - Date in the past: barber_id=%d, date=%s", barberID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailability.ErrDateTooFarInFuture):
			h.logger.Warn("GET /barbers/{id}/availability - Date too far: barber_id=%d, date=%s", barberID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailability.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/{id}/availability - Barber not found: barber_id=%d", barberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, getAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /barbers/{id}/availability - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /barbers/{id}/availability - Failed to get availability: barber_id=%d, service_id=%d, date=%s, error=%v",
				barberID, serviceID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /barbers/{id}/availability - Slots retrieved successfully: barber_id=%d, service_id=%d, date=%s, slots=%d, available=%d",
		barberID, serviceID, dateStr, len(response.Slots), response.AvailableCount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
