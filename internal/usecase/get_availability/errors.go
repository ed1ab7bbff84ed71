package get_availability

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("get_availability: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("get_availability: service not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("get_availability: invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна записи
	ErrDateTooFarInFuture = errors.New("get_availability: date is too far in the future")

	// ErrScheduleMisconfigured возвращается при некорректном расписании барбера или правилах записи
	ErrScheduleMisconfigured = errors.New("get_availability: schedule is misconfigured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
