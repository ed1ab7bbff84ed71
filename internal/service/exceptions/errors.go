package exceptions

import "errors"

var (
	ErrBarberNotFound    = errors.New("barber not found")
	ErrExceptionNotFound = errors.New("schedule exception not found")
	ErrAlreadyExists     = errors.New("schedule exception for this date already exists")
	ErrInvalidInput      = errors.New("invalid input data")
	ErrInternal          = errors.New("service: internal error")
)
