package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-BarberBooking/internal/service/availability"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByConfirmationCode(ctx context.Context, code string) (*domain.Appointment, error)
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

// Engine интерфейс движка расчета слотов и финальной проверки
type Engine interface {
	GenerateSlots(in availability.SlotsInput) ([]domain.AvailabilitySlot, error)
	IsValid(candidateStart, candidateEnd time.Time, barberID int64, existing []*domain.Appointment) bool
	Rules() domain.BookingRules
}

// CodeGenerator генератор кодов подтверждения
type CodeGenerator interface {
	Generate() string
}

// Notifier отправка писем о записи
type Notifier interface {
	SendAppointmentConfirmation(ctx context.Context, data mailer.AppointmentEmail) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsCollector интерфейс для бизнес-метрик
type MetricsCollector interface {
	IncAppointmentsCreated()
	IncBookingConflict(stage string)
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
