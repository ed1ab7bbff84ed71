package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidInput       = "Invalid input"
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD"
	msgInvalidTime        = "Invalid time format, expected HH:MM"
	msgDateInPast         = "Cannot book appointments in the past"
	msgDateTooFar         = "Date is too far in the future"
	msgInvalidTimeSlot    = "Invalid time slot"
	msgTooLateToBook      = "This time slot is too soon to book online"
	msgSlotNotAvailable   = "This time slot is no longer available"
	msgBarberNotFound     = "Barber not found"
	msgServiceNotFound    = "Service not found"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: barber_id=%d, date=%s, time=%s, error=%v",
				req.BarberID, req.Date, req.Time, err)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondValidationError(w, msgInvalidInput, err, createAppointment.ErrInvalidInput)

		case errors.Is(err, createAppointment.ErrBarberNotFound):
			h.logger.Warn("POST /appointments - Barber not found: barber_id=%d", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Date in the past: barber_id=%d, date=%s", req.BarberID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far in future: barber_id=%d, date=%s", req.BarberID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: barber_id=%d, date=%s, time=%s", req.BarberID, req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: barber_id=%d, date=%s, time=%s", req.BarberID, req.Date, req.Time)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: barber_id=%d, service_id=%d, error=%v",
				req.BarberID, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, code=%s, barber_id=%d",
		result.ID, result.ConfirmationCode, result.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
