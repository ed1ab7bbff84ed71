package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
)

const msgInvalidCategory = "Invalid service category"

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

// Handle GET /api/v1/services
// Query params: category (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var category *domain.ServiceCategory
	if raw := r.URL.Query().Get("category"); raw != "" {
		c, err := domain.ParseServiceCategory(raw)
		if err != nil {
			h.logger.Warn("GET /services - Invalid category: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidCategory)
			return
		}
		category = &c
	}

	services, err := h.service.ListServices(r.Context(), category)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if services == nil {
		services = []models.ServiceResponse{}
	}

	h.logger.Info("GET /services - Services retrieved successfully: count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, ServiceListResponse{Services: services})
}
