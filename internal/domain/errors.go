package domain

import "errors"

var (
	ErrUnknownStatus   = errors.New("domain: unknown appointment status")
	ErrUnknownCategory = errors.New("domain: unknown service category")
	ErrInvalidSchedule = errors.New("domain: invalid working hours")
	ErrDayClosed       = errors.New("domain: day is closed")
)
