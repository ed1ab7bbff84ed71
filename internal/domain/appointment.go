package domain

import (
	"fmt"
	"time"
)

// AppointmentStatus представляет статус записи
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no-show"
)

// ParseAppointmentStatus преобразует строку в известный статус
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusNoShow:
		return StatusNoShow, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}

// Appointment представляет запись клиента к барберу.
// Записи не удаляются, меняется только статус.
type Appointment struct {
	ID        int64
	BarberID  int64
	ServiceID int64
	StartAt   time.Time
	EndAt     time.Time
	Status    AppointmentStatus

	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       *string

	ConfirmationCode string

	// Денормализованные данные для истории
	ServiceName            string
	ServiceDurationMinutes int

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если запись занимает время барбера
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled возвращает true, если запись можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// CanTransitionTo проверяет, допустима ли смена статуса.
// Меняется только confirmed, и только вперед.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.Status != StatusConfirmed {
		return false
	}
	switch next {
	case StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	default:
		return false
	}
}

// Interval возвращает полуоткрытый интервал [StartAt, EndAt)
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartAt, End: a.EndAt}
}

// Interval отрезок между двумя моментами времени
type Interval struct {
	Start time.Time
	End   time.Time
}

// AppointmentsFilter фильтр для получения записей барбера
type AppointmentsFilter struct {
	BarberID         int64              // Обязательный параметр
	From             *time.Time         // Начало периода (включительно), nil - без ограничения
	To               *time.Time         // Конец периода (не включительно), nil - без ограничения
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отмененные записи
}
