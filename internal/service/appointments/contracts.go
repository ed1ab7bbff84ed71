package appointments

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/mailer"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByConfirmationCode(ctx context.Context, code string) (*domain.Appointment, error)
	ListByBarber(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason *string) error
}

// Notifier отправка писем об отмене
type Notifier interface {
	SendCancellation(ctx context.Context, data mailer.AppointmentEmail) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
