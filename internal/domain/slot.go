package domain

import "github.com/m04kA/SMC-BarberBooking/pkg/types"

// Причины недоступности слота
const (
	ReasonLeadTime = "lead_time"
	ReasonBreak    = "break"
	ReasonBooked   = "booked"
)

// AvailabilitySlot возможное время начала в рабочем дне.
// Пересчитывается на каждый запрос и не хранится.
type AvailabilitySlot struct {
	Time      types.TimeString
	Available bool
	Reason    string
}

// NextSlot ближайшее свободное время за несколько дней
type NextSlot struct {
	Date string // YYYY-MM-DD
	Time types.TimeString
}
