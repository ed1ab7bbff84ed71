package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// WorkingHours недельное расписание барбера: по записи на каждый день недели,
// даже если день выключен.
type WorkingHours struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// ForWeekday возвращает расписание на день недели
func (w *WorkingHours) ForWeekday(d time.Weekday) DaySchedule {
	switch d {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	default:
		return w.Sunday
	}
}

// Validate проверяет все включенные дни
func (w *WorkingHours) Validate() error {
	for d := time.Sunday; d <= time.Saturday; d++ {
		day := w.ForWeekday(d)
		if err := day.Validate(); err != nil {
			return fmt.Errorf("%s: %w", d, err)
		}
	}
	return nil
}

// DaySchedule рабочее время одного дня недели
type DaySchedule struct {
	Enabled bool
	Start   *types.TimeString
	End     *types.TimeString
	Breaks  []BreakInterval
}

// IsOpen возвращает true, если день включен и у него есть обе границы.
// Иначе день считается выходным.
func (d DaySchedule) IsOpen() bool {
	return d.Enabled && d.Start != nil && d.End != nil
}

// Bounds возвращает минуты открытия и закрытия от полуночи
func (d DaySchedule) Bounds() (start, end int, err error) {
	if !d.IsOpen() {
		return 0, 0, ErrDayClosed
	}
	if start, err = d.Start.Minutes(); err != nil {
		return 0, 0, fmt.Errorf("%w: start: %v", ErrInvalidSchedule, err)
	}
	if end, err = d.End.Minutes(); err != nil {
		return 0, 0, fmt.Errorf("%w: end: %v", ErrInvalidSchedule, err)
	}
	if start > end {
		return 0, 0, fmt.Errorf("%w: start %s is after end %s", ErrInvalidSchedule, *d.Start, *d.End)
	}
	return start, end, nil
}

// Validate пропускает выключенные дни; перерыв за пределами дня допустим
func (d DaySchedule) Validate() error {
	if !d.IsOpen() {
		return nil
	}
	if _, _, err := d.Bounds(); err != nil {
		return err
	}
	for _, b := range d.Breaks {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// BreakInterval перерыв внутри рабочего дня, например обед
type BreakInterval struct {
	Start types.TimeString
	End   types.TimeString
}

func (b BreakInterval) Validate() error {
	start, err := b.Start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: break start: %v", ErrInvalidSchedule, err)
	}
	end, err := b.End.Minutes()
	if err != nil {
		return fmt.Errorf("%w: break end: %v", ErrInvalidSchedule, err)
	}
	if start > end {
		return fmt.Errorf("%w: break %s-%s", ErrInvalidSchedule, b.Start, b.End)
	}
	return nil
}

// OnDate переводит перерыв в моменты времени на указанную дату
func (b BreakInterval) OnDate(date time.Time, loc *time.Location) (Interval, error) {
	start, err := b.Start.OnDate(date, loc)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: break start: %v", ErrInvalidSchedule, err)
	}
	end, err := b.End.OnDate(date, loc)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: break end: %v", ErrInvalidSchedule, err)
	}
	return Interval{Start: start, End: end}, nil
}
