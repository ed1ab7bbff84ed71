package get_next_available

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

// CatalogClient интерфейс клиента CMS
type CatalogClient interface {
	GetBarber(ctx context.Context, barberID int64) (*domain.Barber, error)
	GetService(ctx context.Context, serviceID int64) (*domain.Service, error)
}

// Engine интерфейс движка поиска ближайшего слота
type Engine interface {
	FindNext(in availability.NextInput) (*domain.NextSlot, error)
	Rules() domain.BookingRules
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
