package create_appointment

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("create_appointment: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна записи
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда время не совпадает ни с одним слотом сетки
	ErrInvalidTimeSlot = errors.New("create_appointment: invalid time slot")

	// ErrTooLateToBook возвращается, когда слот ближе, чем срок предварительной записи
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда слот занят или попадает на перерыв
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrScheduleMisconfigured возвращается при некорректном расписании барбера
	ErrScheduleMisconfigured = errors.New("create_appointment: schedule is misconfigured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
