package list_barbers

import "github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"

// BarberListResponse HTTP response model
type BarberListResponse struct {
	Barbers []models.BarberResponse `json:"barbers"`
}
