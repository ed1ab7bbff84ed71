package domain

import "time"

// BookingRules параметры расчета слотов для всего салона
type BookingRules struct {
	SlotIntervalMinutes int
	LeadTimeHours       int
	BufferMinutes       int
	MaxDaysAhead        int
	Location            *time.Location
}

// LeadTime минимальный запас времени до слота
func (r BookingRules) LeadTime() time.Duration {
	return time.Duration(r.LeadTimeHours) * time.Hour
}

// Buffer пауза после каждой записи
func (r BookingRules) Buffer() time.Duration {
	return time.Duration(r.BufferMinutes) * time.Minute
}

// HasBuffer возвращает true, если после записей есть пауза
func (r BookingRules) HasBuffer() bool {
	return r.BufferMinutes > 0
}

// DefaultBookingRules правила по умолчанию
func DefaultBookingRules() BookingRules {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	return BookingRules{
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
		LeadTimeHours:       DefaultLeadTimeHours,
		BufferMinutes:       DefaultBufferMinutes,
		MaxDaysAhead:        DefaultMaxDaysAhead,
		Location:            loc,
	}
}

// Today возвращает полночь текущего дня в часовом поясе салона
func (r BookingRules) Today(now time.Time) time.Time {
	local := now.In(r.location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.location())
}

// DayRange возвращает [start, end) календарной даты в часовом поясе салона
func (r BookingRules) DayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, r.location())
	return start, time.Date(date.Year(), date.Month(), date.Day()+1, 0, 0, 0, 0, r.location())
}

// WithinHorizon проверяет, что дата попадает в [сегодня, сегодня+MaxDaysAhead)
func (r BookingRules) WithinHorizon(date, now time.Time) (inPast bool, tooFar bool) {
	today := r.Today(now)
	day, _ := r.DayRange(date)
	if day.Before(today) {
		return true, false
	}
	if r.MaxDaysAhead > 0 && !day.Before(today.AddDate(0, 0, r.MaxDaysAhead)) {
		return false, true
	}
	return false, false
}

func (r BookingRules) location() *time.Location {
	if r.Location == nil {
		return time.UTC
	}
	return r.Location
}
