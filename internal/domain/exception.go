package domain

import "time"

// ScheduleException переопределяет недельное расписание на одну дату
type ScheduleException struct {
	ID        int64
	BarberID  int64
	Date      time.Time // календарная дата в часовом поясе салона
	IsClosed  bool
	Reason    *string
	CreatedAt time.Time
}

// Matches проверяет, приходится ли исключение на ту же дату
func (e *ScheduleException) Matches(date time.Time) bool {
	return SameDate(e.Date, date)
}

// SameDate сравнивает календарные даты без учета времени и часового пояса
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
