package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/availability"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListByBarber(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ExceptionRepository интерфейс репозитория исключений расписания
type ExceptionRepository interface {
	ListByBarber(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.ScheduleException, error)
}

// CatalogClient интерфейс клиента CMS с барберами и услугами
type CatalogClient interface {
	GetBarber(ctx context.Context, barberID int64) (*domain.Barber, error)
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
}

// Engine интерфейс движка расчета слотов
type Engine interface {
	GenerateSlots(in availability.SlotsInput) ([]domain.AvailabilitySlot, error)
	Rules() domain.BookingRules
}

// MetricsCollector интерфейс для бизнес-метрик
type MetricsCollector interface {
	ObserveSlots(available, unavailable int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
