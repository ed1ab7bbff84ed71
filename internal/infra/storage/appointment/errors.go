package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrStatusChanged возвращается, когда запись не найдена или уже не в статусе confirmed
	ErrStatusChanged = errors.New("appointment.repository: appointment is no longer confirmed")

	// ErrSlotTaken возвращается, когда время барбера уже занято (уникальный индекс или exclusion constraint)
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrDuplicateCode возвращается при коллизии кода подтверждения
	ErrDuplicateCode = errors.New("appointment.repository: duplicate confirmation code")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
