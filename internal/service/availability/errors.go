package availability

import "errors"

var (
	// ErrInvalidConfiguration шаг сетки или длительность услуги не положительные
	ErrInvalidConfiguration = errors.New("availability: invalid configuration")
	// ErrInvalidSchedule некорректные рабочие часы или перерывы
	ErrInvalidSchedule = errors.New("availability: invalid schedule")
)
