package get_next_available

import (
	getNextAvailable "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_next_available"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
)

// NextAvailableResponse HTTP response model; Date и Time заполнены только при Found
type NextAvailableResponse struct {
	BarberID     int64   `json:"barberId"`
	ServiceID    int64   `json:"serviceId"`
	Found        bool    `json:"found"`
	Date         *string `json:"date,omitempty"`
	Time         *string `json:"time,omitempty"`
	MaxDaysAhead int     `json:"maxDaysAhead"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getNextAvailable.Response) *NextAvailableResponse {
	out := &NextAvailableResponse{
		BarberID:     resp.BarberID,
		ServiceID:    resp.ServiceID,
		MaxDaysAhead: resp.MaxDaysAhead,
	}
	if resp.Slot != nil {
		out.Found = true
		out.Date = ptr.Ptr(resp.Slot.Date)
		out.Time = ptr.Ptr(resp.Slot.Time.String())
	}
	return out
}
