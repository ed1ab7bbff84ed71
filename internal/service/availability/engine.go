// Package availability рассчитывает свободные слоты барбера.
//
// Все функции чистые: данные передаются на вход, между вызовами ничего не кешируется.
// Загрузка расписаний и записей - задача вызывающего кода.
package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Engine строит и проверяет время записи по правилам салона
type Engine struct {
	rules domain.BookingRules
}

func NewEngine(rules domain.BookingRules) *Engine {
	if rules.Location == nil {
		rules.Location = time.UTC
	}
	return &Engine{rules: rules}
}

// Rules возвращает правила, с которыми создан движок
func (e *Engine) Rules() domain.BookingRules {
	return e.rules
}

// GenerateSlots проходит рабочий день in.Date с шагом SlotIntervalMinutes и
// помечает каждое время начала как свободное или занятое. Слот попадает в сетку,
// пока услуга заканчивается не позже закрытия.
//
// Выходной, выключенный день или закрывающее исключение дают пустой список.
func (e *Engine) GenerateSlots(in SlotsInput) ([]domain.AvailabilitySlot, error) {
	if e.rules.SlotIntervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot interval %d", ErrInvalidConfiguration, e.rules.SlotIntervalMinutes)
	}
	if in.ServiceDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: service duration %d", ErrInvalidConfiguration, in.ServiceDurationMinutes)
	}

	loc := e.rules.Location
	y, m, d := in.Date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)

	schedule := in.WorkingHours.ForWeekday(day.Weekday())
	if !schedule.IsOpen() {
		return []domain.AvailabilitySlot{}, nil
	}
	if e.isClosedByException(in.BarberID, day, in.Exceptions) {
		return []domain.AvailabilitySlot{}, nil
	}

	openMin, closeMin, err := schedule.Bounds()
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSchedule) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		return []domain.AvailabilitySlot{}, nil
	}

	breaks := make([]domain.Interval, 0, len(schedule.Breaks))
	for _, b := range schedule.Breaks {
		interval, err := b.OnDate(day, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}
		breaks = append(breaks, interval)
	}

	buffer := e.rules.Buffer()
	booked := e.blockedIntervals(in.BarberID, in.Appointments)
	earliest := in.Now.Add(e.rules.LeadTime())
	duration := time.Duration(in.ServiceDurationMinutes) * time.Minute

	slots := make([]domain.AvailabilitySlot, 0, (closeMin-openMin)/e.rules.SlotIntervalMinutes+1)
	for cursorMin := openMin; cursorMin+in.ServiceDurationMinutes <= closeMin; cursorMin += e.rules.SlotIntervalMinutes {
		cursor := time.Date(y, m, d, cursorMin/60, cursorMin%60, 0, 0, loc)
		slot := domain.Interval{Start: cursor, End: cursor.Add(duration + buffer)}

		label, err := types.NewTimeStringFromMinutes(cursorMin)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}

		reason := ""
		switch {
		case cursor.Before(earliest):
			reason = domain.ReasonLeadTime
		case overlapsAny(slot, breaks):
			reason = domain.ReasonBreak
		case overlapsAny(slot, booked):
			reason = domain.ReasonBooked
		}

		slots = append(slots, domain.AvailabilitySlot{
			Time:      label,
			Available: reason == "",
			Reason:    reason,
		})
	}

	return slots, nil
}

// IsValid - финальная проверка перед сохранением записи. В отличие от сетки
// слотов пересечение включающее: касание с записью того же барбера тоже конфликт.
func (e *Engine) IsValid(candidateStart, candidateEnd time.Time, barberID int64, existing []*domain.Appointment) bool {
	candidate := domain.Interval{Start: candidateStart, End: candidateEnd}
	for _, a := range existing {
		if a == nil || a.BarberID != barberID || !a.IsActive() {
			continue
		}
		if Overlaps(candidate, a.Interval(), true) {
			return false
		}
	}
	return true
}

func (e *Engine) isClosedByException(barberID int64, day time.Time, exceptions []*domain.ScheduleException) bool {
	for _, ex := range exceptions {
		if ex == nil || !ex.IsClosed {
			continue
		}
		if ex.BarberID != 0 && ex.BarberID != barberID {
			continue
		}
		if ex.Matches(day) {
			return true
		}
	}
	return false
}

// blockedIntervals возвращает занятые интервалы барбера, продленные на буфер после окончания
func (e *Engine) blockedIntervals(barberID int64, appointments []*domain.Appointment) []domain.Interval {
	buffer := e.rules.Buffer()
	result := make([]domain.Interval, 0, len(appointments))
	for _, a := range appointments {
		if a == nil || a.BarberID != barberID || !a.IsActive() {
			continue
		}
		result = append(result, domain.Interval{Start: a.StartAt, End: a.EndAt.Add(buffer)})
	}
	return result
}

func overlapsAny(slot domain.Interval, intervals []domain.Interval) bool {
	for _, iv := range intervals {
		if Overlaps(slot, iv, false) {
			return true
		}
	}
	return false
}
