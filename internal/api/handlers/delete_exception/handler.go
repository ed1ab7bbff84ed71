package delete_exception

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
	msgInvalidExceptionID = "Invalid exception ID"
	msgNotFound           = "Schedule exception not found"
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

// Handle DELETE /api/v1/admin/barbers/{barberId}/exceptions/{exceptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	barberID, err := strconv.ParseInt(vars["barberId"], 10, 64)
	if err != nil || barberID < 0 {
		h.logger.Warn("DELETE /admin/barbers/{id}/exceptions/{id} - Invalid barber ID: %q", vars["barberId"])
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	exceptionID, err := strconv.ParseInt(vars["exceptionId"], 10, 64)
	if err != nil || exceptionID <= 0 {
		h.logger.Warn("DELETE /admin/barbers/{id}/exceptions/{id} - Invalid exception ID: %q", vars["exceptionId"])
		handlers.RespondBadRequest(w, msgInvalidExceptionID)
		return
	}

	if err := h.service.Delete(r.Context(), barberID, exceptionID); err != nil {
		switch {
		case errors.Is(err, exceptions.ErrExceptionNotFound):
			h.logger.Warn("DELETE /admin/barbers/{id}/exceptions/{id} - Not found: barber_id=%d, id=%d", barberID, exceptionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/barbers/{id}/exceptions/{id} - Failed to delete exception: barber_id=%d, id=%d, error=%v",
				barberID, exceptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/barbers/{id}/exceptions/{id} - Exception deleted: barber_id=%d, id=%d", barberID, exceptionID)
	w.WriteHeader(http.StatusNoContent)
}
