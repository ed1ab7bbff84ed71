package get_availability

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_availability"
)

// SlotResponse слот сетки
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date                   string         `json:"date"`
	BarberID               int64          `json:"barberId"`
	ServiceID              int64          `json:"serviceId"`
	ServiceDurationMinutes int            `json:"serviceDurationMinutes"`
	Timezone               string         `json:"timezone"`
	AvailableCount         int            `json:"availableCount"`
	Slots                  []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(barberID, serviceID int64, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailability.Request{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:      s.Time.String(),
			Available: s.Available,
			Reason:    s.Reason,
		})
	}
	return &AvailabilityResponse{
		Date:                   resp.Date.Format(domain.DateFormat),
		BarberID:               resp.BarberID,
		ServiceID:              resp.ServiceID,
		ServiceDurationMinutes: resp.ServiceDurationMinutes,
		Timezone:               resp.Timezone,
		AvailableCount:         resp.AvailableCount(),
		Slots:                  slots,
	}
}
