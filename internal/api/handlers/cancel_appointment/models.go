package cancel_appointment

import "github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	Email  string  `json:"email"`
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest() *models.CancelRequest {
	return &models.CancelRequest{
		Email:  r.Email,
		Reason: r.Reason,
	}
}
