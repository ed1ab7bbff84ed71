package list_exceptions

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/exceptions"
)

type ExceptionService interface {
	List(ctx context.Context, req *exceptions.ListRequest) ([]exceptions.ExceptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
