package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// FindNext возвращает первый свободный слот в днях от in.StartDate до
// in.StartDate+MaxDaysAhead-1; nil, если свободного времени нет.
func (e *Engine) FindNext(in NextInput) (*domain.NextSlot, error) {
	days := in.MaxDaysAhead
	if days <= 0 {
		days = e.rules.MaxDaysAhead
	}

	y, m, d := in.StartDate.Date()
	for i := 0; i < days; i++ {
		date := time.Date(y, m, d+i, 0, 0, 0, 0, e.rules.Location)

		slots, err := e.GenerateSlots(SlotsInput{
			Date:                   date,
			BarberID:               in.BarberID,
			ServiceDurationMinutes: in.ServiceDurationMinutes,
			WorkingHours:           in.WorkingHours,
			Appointments:           in.Appointments,
			Exceptions:             in.Exceptions,
			Now:                    in.Now,
		})
		if err != nil {
			return nil, err
		}

		for _, s := range slots {
			if s.Available {
				return &domain.NextSlot{Date: date.Format(domain.DateFormat), Time: s.Time}, nil
			}
		}
	}

	return nil, nil
}
