package create_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	createAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	BarberID    int64   `json:"barberId"`
	ServiceID   int64   `json:"serviceId"`
	Date        string  `json:"date"` // "2025-03-10"
	Time        string  `json:"time"` // "14:30"
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone string  `json:"clientPhone"`
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse созданная запись
type AppointmentResponse struct {
	ID               int64     `json:"id"`
	ConfirmationCode string    `json:"confirmationCode"`
	BarberID         int64     `json:"barberId"`
	BarberName       string    `json:"barberName"`
	ServiceID        int64     `json:"serviceId"`
	ServiceName      string    `json:"serviceName"`
	DurationMinutes  int       `json:"durationMinutes"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	StartAt          time.Time `json:"startAt"`
	EndAt            time.Time `json:"endAt"`
	Status           string    `json:"status"`
	ClientName       string    `json:"clientName"`
	ClientEmail      string    `json:"clientEmail"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	Success          bool                `json:"success"`
	ConfirmationCode string              `json:"confirmationCode"`
	Appointment      AppointmentResponse `json:"appointment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	start, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createAppointment.Request{
		BarberID:    r.BarberID,
		ServiceID:   r.ServiceID,
		Date:        date,
		Time:        start,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		Success:          true,
		ConfirmationCode: resp.ConfirmationCode,
		Appointment: AppointmentResponse{
			ID:               resp.ID,
			ConfirmationCode: resp.ConfirmationCode,
			BarberID:         resp.BarberID,
			BarberName:       resp.BarberName,
			ServiceID:        resp.ServiceID,
			ServiceName:      resp.ServiceName,
			DurationMinutes:  resp.DurationMinutes,
			Date:             resp.StartAt.Format(domain.DateFormat),
			Time:             resp.StartAt.Format(domain.TimeFormat),
			StartAt:          resp.StartAt,
			EndAt:            resp.EndAt,
			Status:           resp.Status,
			ClientName:       resp.ClientName,
			ClientEmail:      resp.ClientEmail,
			CreatedAt:        resp.CreatedAt,
		},
	}
}
