package catalog

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// CatalogClient интерфейс клиента CMS
type CatalogClient interface {
	ListBarbers(ctx context.Context) ([]*domain.Barber, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
