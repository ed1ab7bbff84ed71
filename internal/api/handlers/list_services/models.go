package list_services

import "github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"

// ServiceListResponse HTTP response model
type ServiceListResponse struct {
	Services []models.ServiceResponse `json:"services"`
}
