package exceptions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ExceptionRepository интерфейс репозитория исключений расписания
type ExceptionRepository interface {
	Create(ctx context.Context, ex *domain.ScheduleException) (*domain.ScheduleException, error)
	ListByBarber(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.ScheduleException, error)
	Delete(ctx context.Context, barberID, id int64) error
}

// BarberGetter проверка существования барбера в CMS
type BarberGetter interface {
	GetBarber(ctx context.Context, barberID int64) (*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
