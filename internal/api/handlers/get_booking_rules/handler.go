package get_booking_rules

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

type Handler struct {
	rules RulesProvider
}

func NewHandler(rules RulesProvider) *Handler {
	return &Handler{rules: rules}
}

// Handle GET /api/v1/booking-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.rules.BookingRules())
}
