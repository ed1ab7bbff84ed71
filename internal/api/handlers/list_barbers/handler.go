package list_barbers

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barbers, err := h.service.ListBarbers(r.Context())
	if err != nil {
		h.logger.Error("GET /barbers - Failed to list barbers: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if barbers == nil {
		barbers = []models.BarberResponse{}
	}

	h.logger.Info("GET /barbers - Barbers retrieved successfully: count=%d", len(barbers))
	handlers.RespondJSON(w, http.StatusOK, BarberListResponse{Barbers: barbers})
}
