package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request модели

// CancelRequest запрос клиента на отмену записи
type CancelRequest struct {
	Email  string  `json:"email"`
	Reason *string `json:"reason,omitempty"`
}

// UpdateStatusRequest запрос администратора на смену статуса
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

// ListRequest запрос администратора на список записей барбера
type ListRequest struct {
	BarberID         int64
	Date             *time.Time // одна календарная дата (опционально)
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter(rules domain.BookingRules) (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		BarberID:         r.BarberID,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Date != nil {
		from, to := rules.DayRange(*r.Date)
		filter.From = &from
		filter.To = &to
	}

	if r.Status != nil {
		status, err := domain.ParseAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse данные записи
type AppointmentResponse struct {
	ID               int64     `json:"id"`
	ConfirmationCode string    `json:"confirmationCode"`
	BarberID         int64     `json:"barberId"`
	ServiceID        int64     `json:"serviceId"`
	ServiceName      string    `json:"serviceName"`
	DurationMinutes  int       `json:"durationMinutes"`
	Date             string    `json:"date"` // "2025-03-10" в часовом поясе салона
	Time             string    `json:"time"` // "14:30"
	StartAt          time.Time `json:"startAt"`
	EndAt            time.Time `json:"endAt"`
	Status           string    `json:"status"`

	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone string  `json:"clientPhone"`
	Notes       *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	start := a.StartAt.In(loc)

	resp := &AppointmentResponse{
		ID:                 a.ID,
		ConfirmationCode:   a.ConfirmationCode,
		BarberID:           a.BarberID,
		ServiceID:          a.ServiceID,
		ServiceName:        a.ServiceName,
		DurationMinutes:    a.ServiceDurationMinutes,
		Date:               start.Format(domain.DateFormat),
		Time:               start.Format(domain.TimeFormat),
		StartAt:            start,
		EndAt:              a.EndAt.In(loc),
		Status:             string(a.Status),
		ClientName:         a.ClientName,
		ClientEmail:        a.ClientEmail,
		ClientPhone:        a.ClientPhone,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(list []*domain.Appointment, loc *time.Location) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
	}
	for _, a := range list {
		if item := FromDomainAppointment(a, loc); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}
	return resp
}
