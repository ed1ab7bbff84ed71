package create_exception

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/exceptions"
)

// CreateExceptionRequest HTTP request model
type CreateExceptionRequest struct {
	Date   string  `json:"date"` // "2025-12-25"
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateExceptionRequest) ToServiceRequest(barberID int64) (*exceptions.CreateRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}
	return &exceptions.CreateRequest{
		BarberID: barberID,
		Date:     date,
		Reason:   r.Reason,
	}, nil
}
