package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// SlotsInput данные для расчета слотов одного барбера на одну дату.
// Все коллекции уже загружены вызывающей стороной.
type SlotsInput struct {
	Date                   time.Time // календарная дата; время и зона игнорируются
	BarberID               int64
	ServiceDurationMinutes int
	WorkingHours           domain.WorkingHours
	Appointments           []*domain.Appointment
	Exceptions             []*domain.ScheduleException
	Now                    time.Time
}

// NextInput данные для поиска ближайшего свободного слота
type NextInput struct {
	StartDate              time.Time
	MaxDaysAhead           int // 0 - взять из правил
	BarberID               int64
	ServiceDurationMinutes int
	WorkingHours           domain.WorkingHours
	Appointments           []*domain.Appointment
	Exceptions             []*domain.ScheduleException
	Now                    time.Time
}
