package get_next_available

import "errors"

var (
	ErrBarberNotFound        = errors.New("get_next_available: barber not found")
	ErrServiceNotFound       = errors.New("get_next_available: service not found")
	ErrScheduleMisconfigured = errors.New("get_next_available: schedule is misconfigured")
	ErrInvalidInput          = errors.New("get_next_available: invalid input data")
	ErrInternal              = errors.New("get_next_available: internal error")
)
