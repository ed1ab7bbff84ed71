package list_exceptions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/exceptions"
)

const (
	msgInvalidBarberID = "Invalid barber ID"
	msgInvalidParams   = "from and to are required, expected YYYY-MM-DD"
	msgInvalidInput    = "Invalid date range"
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

// Handle GET /api/v1/admin/barbers/{barberId}/exceptions
// Query params: from, to (required, YYYY-MM-DD, включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["barberId"], 10, 64)
	if err != nil || barberID < 0 {
		h.logger.Warn("GET /admin/barbers/{id}/exceptions - Invalid barber ID: %q", mux.Vars(r)["barberId"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	q := r.URL.Query()
	serviceReq, err := ToServiceRequest(barberID, q.Get("from"), q.Get("to"))
	if err != nil {
		h.logger.Warn("GET /admin/barbers/{id}/exceptions - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	list, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, exceptions.ErrInvalidInput):
			h.logger.Warn("GET /admin/barbers/{id}/exceptions - Invalid input: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err, exceptions.ErrInvalidInput)

		default:
			h.logger.Error("GET /admin/barbers/{id}/exceptions - Failed to list exceptions: barber_id=%d, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/barbers/{id}/exceptions - Exceptions retrieved successfully: barber_id=%d, count=%d",
		barberID, len(list))
	handlers.RespondJSON(w, http.StatusOK, ExceptionListResponse{Exceptions: list})
}
