package domain

// Значения конфигурации по умолчанию
const (
	DefaultSlotIntervalMinutes = 15
	DefaultLeadTimeHours       = 2
	DefaultBufferMinutes       = 0
	DefaultMaxDaysAhead        = 30
	DefaultTimezone            = "America/Chicago"
)

// Константы бизнес-валидации
const (
	MinClientNameLength         = 2
	MaxClientNameLength         = 100
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxExceptionReasonLength    = 200
	ConfirmationCodeLength      = 8
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// Форматы для писем клиенту
	HumanDateFormat = "Monday, January 2, 2006"
	HumanTimeFormat = "3:04 PM"
)

// ActiveStatuses список статусов, которые занимают время барбера
var ActiveStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusCompleted,
	StatusNoShow,
}
