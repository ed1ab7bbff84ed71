package create_exception

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/exceptions"
)

type ExceptionService interface {
	Create(ctx context.Context, req *exceptions.CreateRequest) (*exceptions.ExceptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
