package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

const barberID int64 = 1

// 2025-03-10 - понедельник
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func at(hhmm string) time.Time {
	t, err := types.TimeString(hhmm).OnDate(monday, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func rules(interval, leadHours, buffer int) domain.BookingRules {
	return domain.BookingRules{
		SlotIntervalMinutes: interval,
		LeadTimeHours:       leadHours,
		BufferMinutes:       buffer,
		MaxDaysAhead:        30,
		Location:            time.UTC,
	}
}

func openDay(start, end string, breaks ...domain.BreakInterval) domain.DaySchedule {
	return domain.DaySchedule{
		Enabled: true,
		Start:   ptr.Ptr(types.TimeString(start)),
		End:     ptr.Ptr(types.TimeString(end)),
		Breaks:  breaks,
	}
}

func mondayOnly(day domain.DaySchedule) domain.WorkingHours {
	return domain.WorkingHours{Monday: day}
}

func appointment(start, end string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		BarberID: barberID,
		StartAt:  at(start),
		EndAt:    at(end),
		Status:   status,
	}
}

func slotsInput(wh domain.WorkingHours, duration int, appts ...*domain.Appointment) SlotsInput {
	return SlotsInput{
		Date:                   monday,
		BarberID:               barberID,
		ServiceDurationMinutes: duration,
		WorkingHours:           wh,
		Appointments:           appts,
		// Накануне, чтобы срок предварительной записи не мешал
		Now: monday.Add(-24 * time.Hour),
	}
}

func byTime(slots []domain.AvailabilitySlot) map[string]domain.AvailabilitySlot {
	result := make(map[string]domain.AvailabilitySlot, len(slots))
	for _, s := range slots {
		result[s.Time.String()] = s
	}
	return result
}

func TestOverlaps(t *testing.T) {
	first := domain.Interval{Start: at("09:00"), End: at("10:00")}
	second := domain.Interval{Start: at("10:00"), End: at("11:00")}
	inner := domain.Interval{Start: at("09:30"), End: at("09:45")}
	point := domain.Interval{Start: at("10:00"), End: at("10:00")}

	tests := []struct {
		name      string
		a, b      domain.Interval
		inclusive bool
		want      bool
	}{
		{"touching exclusive", first, second, false, false},
		{"touching inclusive", first, second, true, true},
		{"nested exclusive", first, inner, false, true},
		{"equal inclusive", second, second, true, true},
		{"point at boundary exclusive", first, point, false, false},
		{"point at boundary inclusive", first, point, true, true},
		{"point inside exclusive", domain.Interval{Start: at("09:30"), End: at("09:30")}, first, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b, tt.inclusive))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a, tt.inclusive))
		})
	}
}

func TestGenerateSlots_FullDay(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))

	slots, err := e.GenerateSlots(slotsInput(mondayOnly(openDay("09:00", "17:00")), 30))
	require.NoError(t, err)

	// 09:00 ... 16:30 включительно
	require.Len(t, slots, 31)
	assert.Equal(t, types.TimeString("09:00"), slots[0].Time)
	assert.Equal(t, types.TimeString("16:30"), slots[len(slots)-1].Time)
	for _, s := range slots {
		assert.True(t, s.Available, s.Time)
		assert.Empty(t, s.Reason)
	}
}

func TestGenerateSlots_NeverPastClosing(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))
	end := types.TimeString("17:00")

	for _, duration := range []int{10, 25, 30, 45, 60, 95} {
		slots, err := e.GenerateSlots(slotsInput(mondayOnly(openDay("09:00", end.String())), duration))
		require.NoError(t, err)
		require.NotEmpty(t, slots)

		for _, s := range slots {
			slotEnd, err := s.Time.AddMinutes(duration)
			require.NoError(t, err)
			assert.False(t, slotEnd.IsAfter(end), "duration=%d slot=%s", duration, s.Time)
		}
	}
}

func TestGenerateSlots_ClosedDays(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))

	t.Run("disabled day", func(t *testing.T) {
		day := openDay("09:00", "17:00")
		day.Enabled = false
		slots, err := e.GenerateSlots(slotsInput(mondayOnly(day), 30))
		require.NoError(t, err)
		assert.Empty(t, slots)
		assert.NotNil(t, slots)
	})

	t.Run("missing bounds", func(t *testing.T) {
		slots, err := e.GenerateSlots(slotsInput(mondayOnly(domain.DaySchedule{Enabled: true}), 30))
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("other weekday", func(t *testing.T) {
		in := slotsInput(domain.WorkingHours{Tuesday: openDay("09:00", "17:00")}, 30)
		slots, err := e.GenerateSlots(in)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("closed exception", func(t *testing.T) {
		in := slotsInput(mondayOnly(openDay("09:00", "17:00")), 30)
		in.Exceptions = []*domain.ScheduleException{{BarberID: barberID, Date: monday, IsClosed: true}}
		slots, err := e.GenerateSlots(in)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("open exception is ignored", func(t *testing.T) {
		in := slotsInput(mondayOnly(openDay("09:00", "17:00")), 30)
		in.Exceptions = []*domain.ScheduleException{{BarberID: barberID, Date: monday, IsClosed: false}}
		slots, err := e.GenerateSlots(in)
		require.NoError(t, err)
		assert.NotEmpty(t, slots)
	})

	t.Run("exception of another barber", func(t *testing.T) {
		in := slotsInput(mondayOnly(openDay("09:00", "17:00")), 30)
		in.Exceptions = []*domain.ScheduleException{{BarberID: 99, Date: monday, IsClosed: true}}
		slots, err := e.GenerateSlots(in)
		require.NoError(t, err)
		assert.NotEmpty(t, slots)
	})

	t.Run("start equals end", func(t *testing.T) {
		slots, err := e.GenerateSlots(slotsInput(mondayOnly(openDay("09:00", "09:00")), 30))
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("duration longer than the day", func(t *testing.T) {
		slots, err := e.GenerateSlots(slotsInput(mondayOnly(openDay("09:00", "10:00")), 90))
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestGenerateSlots_InvalidConfiguration(t *testing.T) {
	wh := mondayOnly(openDay("09:00", "17:00"))

	_, err := NewEngine(rules(0, 0, 0)).GenerateSlots(slotsInput(wh, 30))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewEngine(rules(-15, 0, 0)).GenerateSlots(slotsInput(wh, 30))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = NewEngine(rules(15, 0, 0)).GenerateSlots(slotsInput(wh, 0))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestGenerateSlots_InvalidSchedule(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))

	_, err := e.GenerateSlots(slotsInput(mondayOnly(openDay("17:00", "09:00")), 30))
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = e.GenerateSlots(slotsInput(mondayOnly(openDay("9:00", "17:00")), 30))
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	_, err = e.GenerateSlots(slotsInput(mondayOnly(openDay("09:00", "17:00",
		domain.BreakInterval{Start: "noon", End: "13:00"})), 30))
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestGenerateSlots_Breaks(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))
	day := openDay("09:00", "17:00", domain.BreakInterval{Start: "12:00", End: "13:00"})

	slots, err := e.GenerateSlots(slotsInput(mondayOnly(day), 30))
	require.NoError(t, err)
	got := byTime(slots)

	assert.True(t, got["11:30"].Available, "ends exactly at break start")
	assert.False(t, got["11:45"].Available)
	assert.Equal(t, domain.ReasonBreak, got["11:45"].Reason)
	assert.False(t, got["12:00"].Available)
	assert.False(t, got["12:45"].Available)
	assert.True(t, got["13:00"].Available, "starts exactly at break end")
}

func TestGenerateSlots_LeadTimeBoundary(t *testing.T) {
	e := NewEngine(rules(15, 2, 0))
	in := slotsInput(mondayOnly(openDay("09:00", "17:00")), 30)
	in.Now = at("09:00")

	slots, err := e.GenerateSlots(in)
	require.NoError(t, err)
	got := byTime(slots)

	assert.True(t, got["11:00"].Available, "exactly now + lead time")
	assert.False(t, got["10:45"].Available)
	assert.Equal(t, domain.ReasonLeadTime, got["10:45"].Reason)
	assert.False(t, got["09:00"].Available)

	// На минуту позже: 11:00 уже раньше допустимого
	in.Now = at("09:01")
	slots, err = e.GenerateSlots(in)
	require.NoError(t, err)
	got = byTime(slots)
	assert.False(t, got["11:00"].Available)
	assert.True(t, got["11:15"].Available)
}

func TestGenerateSlots_BufferBoundary(t *testing.T) {
	e := NewEngine(rules(5, 0, 10))
	appt := appointment("09:00", "10:00", domain.StatusConfirmed)

	slots, err := e.GenerateSlots(slotsInput(mondayOnly(openDay("09:00", "17:00")), 30, appt))
	require.NoError(t, err)
	got := byTime(slots)

	assert.False(t, got["10:05"].Available)
	assert.Equal(t, domain.ReasonBooked, got["10:05"].Reason)
	assert.True(t, got["10:10"].Available)
}

func TestGenerateSlots_BufferBeforeNextAppointment(t *testing.T) {
	e := NewEngine(rules(15, 0, 15))
	appt := appointment("11:00", "11:30", domain.StatusConfirmed)

	slots, err := e.GenerateSlots(slotsInput(mondayOnly(openDay("09:00", "17:00")), 30, appt))
	require.NoError(t, err)
	got := byTime(slots)

	// 10:15 + 30 + 15 = 11:00, ровно к началу записи
	assert.True(t, got["10:15"].Available)
	assert.False(t, got["10:30"].Available)
	assert.False(t, got["11:30"].Available)
	assert.True(t, got["11:45"].Available)
}

func TestGenerateSlots_ExistingAppointment(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))
	appt := appointment("09:00", "09:45", domain.StatusConfirmed)

	slots, err := e.GenerateSlots(slotsInput(mondayOnly(openDay("09:00", "17:00")), 30, appt))
	require.NoError(t, err)
	got := byTime(slots)

	assert.False(t, got["09:00"].Available)
	assert.False(t, got["09:15"].Available)
	assert.False(t, got["09:30"].Available)
	assert.Equal(t, domain.ReasonBooked, got["09:30"].Reason)
	assert.True(t, got["09:45"].Available)
	assert.True(t, got["10:00"].Available)
}

func TestGenerateSlots_TouchingAppointmentsAreNotConflicts(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))
	appt := appointment("09:00", "10:00", domain.StatusConfirmed)

	slots, err := e.GenerateSlots(slotsInput(mondayOnly(openDay("09:00", "17:00")), 60, appt))
	require.NoError(t, err)

	assert.True(t, byTime(slots)["10:00"].Available)
}

func TestGenerateSlots_AvailableNeverOverlapsAppointments(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))
	appts := []*domain.Appointment{
		appointment("09:10", "09:40", domain.StatusConfirmed),
		appointment("12:00", "13:15", domain.StatusCompleted),
		appointment("15:50", "16:05", domain.StatusNoShow),
	}
	duration := 45

	slots, err := e.GenerateSlots(slotsInput(mondayOnly(openDay("09:00", "18:00")), duration, appts...))
	require.NoError(t, err)

	for _, s := range slots {
		if !s.Available {
			continue
		}
		start, err := s.Time.OnDate(monday, time.UTC)
		require.NoError(t, err)
		slot := domain.Interval{Start: start, End: start.Add(time.Duration(duration) * time.Minute)}
		for _, a := range appts {
			assert.False(t, Overlaps(slot, a.Interval(), false), "slot %s overlaps %v", s.Time, a.Interval())
		}
	}
}

func TestGenerateSlots_IgnoresCancelledAndOtherBarbers(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))
	cancelled := appointment("09:00", "12:00", domain.StatusCancelled)
	other := appointment("09:00", "12:00", domain.StatusConfirmed)
	other.BarberID = 42

	slots, err := e.GenerateSlots(slotsInput(mondayOnly(openDay("09:00", "12:00")), 30, cancelled, other))
	require.NoError(t, err)

	for _, s := range slots {
		assert.True(t, s.Available, s.Time)
	}
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	e := NewEngine(rules(15, 1, 5))
	in := slotsInput(
		mondayOnly(openDay("09:00", "17:00", domain.BreakInterval{Start: "12:00", End: "12:30"})),
		30,
		appointment("10:00", "10:30", domain.StatusConfirmed),
	)
	in.Now = at("08:30")

	first, err := e.GenerateSlots(in)
	require.NoError(t, err)
	second, err := e.GenerateSlots(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_ShopTimezone(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)

	e := NewEngine(domain.BookingRules{SlotIntervalMinutes: 60, LeadTimeHours: 0, Location: chicago})
	// 2025-03-09: переход на летнее время в Чикаго
	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	appt := &domain.Appointment{
		BarberID: barberID,
		// 10:00 CDT = 15:00 UTC
		StartAt: time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 3, 9, 16, 0, 0, 0, time.UTC),
		Status:  domain.StatusConfirmed,
	}

	slots, err := e.GenerateSlots(SlotsInput{
		Date:                   sunday,
		BarberID:               barberID,
		ServiceDurationMinutes: 60,
		WorkingHours:           domain.WorkingHours{Sunday: openDay("09:00", "12:00")},
		Appointments:           []*domain.Appointment{appt},
		Now:                    sunday.Add(-48 * time.Hour),
	})
	require.NoError(t, err)
	got := byTime(slots)

	require.Len(t, slots, 3)
	assert.True(t, got["09:00"].Available)
	assert.False(t, got["10:00"].Available)
	assert.True(t, got["11:00"].Available)
}

func TestIsValid(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))
	existing := []*domain.Appointment{
		appointment("10:00", "11:00", domain.StatusConfirmed),
		appointment("13:00", "14:00", domain.StatusCancelled),
	}

	assert.False(t, e.IsValid(at("10:00"), at("11:00"), barberID, existing), "same interval twice")
	assert.False(t, e.IsValid(at("10:30"), at("11:30"), barberID, existing))
	assert.False(t, e.IsValid(at("11:00"), at("12:00"), barberID, existing), "touching end")
	assert.False(t, e.IsValid(at("09:00"), at("10:00"), barberID, existing), "touching start")
	assert.True(t, e.IsValid(at("11:15"), at("12:15"), barberID, existing))
	assert.True(t, e.IsValid(at("13:00"), at("14:00"), barberID, existing), "cancelled is ignored")
	assert.True(t, e.IsValid(at("10:00"), at("11:00"), 77, existing), "other barber")
	assert.True(t, e.IsValid(at("10:00"), at("11:00"), barberID, nil))
}

func TestIsValid_SecondCommitOfSameSlotIsRejected(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))
	var stored []*domain.Appointment

	require.True(t, e.IsValid(at("10:00"), at("11:00"), barberID, stored))
	stored = append(stored, appointment("10:00", "11:00", domain.StatusConfirmed))

	assert.False(t, e.IsValid(at("10:00"), at("11:00"), barberID, stored))
}
