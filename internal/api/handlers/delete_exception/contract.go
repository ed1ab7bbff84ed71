package delete_exception

import "context"

type ExceptionService interface {
	Delete(ctx context.Context, barberID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
