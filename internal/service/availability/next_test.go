package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

func TestFindNext_SameDay(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))

	next, err := e.FindNext(NextInput{
		StartDate:              monday,
		MaxDaysAhead:           7,
		BarberID:               barberID,
		ServiceDurationMinutes: 30,
		WorkingHours:           mondayOnly(openDay("09:00", "17:00")),
		Appointments:           []*domain.Appointment{appointment("09:00", "10:00", domain.StatusConfirmed)},
		Now:                    monday.Add(-time.Hour),
	})
	require.NoError(t, err)
	require.NotNil(t, next)

	assert.Equal(t, "2025-03-10", next.Date)
	assert.Equal(t, types.TimeString("10:00"), next.Time)
}

func TestFindNext_SkipsClosedAndExceptionDays(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))
	wh := domain.WorkingHours{
		Monday:    openDay("09:00", "17:00"),
		Wednesday: openDay("10:00", "14:00"),
	}

	next, err := e.FindNext(NextInput{
		StartDate:              monday,
		MaxDaysAhead:           7,
		BarberID:               barberID,
		ServiceDurationMinutes: 30,
		WorkingHours:           wh,
		Exceptions:             []*domain.ScheduleException{{BarberID: barberID, Date: monday, IsClosed: true}},
		Now:                    monday.Add(-time.Hour),
	})
	require.NoError(t, err)
	require.NotNil(t, next)

	assert.Equal(t, "2025-03-12", next.Date)
	assert.Equal(t, types.TimeString("10:00"), next.Time)
}

func TestFindNext_NotFound(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))

	next, err := e.FindNext(NextInput{
		StartDate:              monday.AddDate(0, 0, 1),
		MaxDaysAhead:           6,
		BarberID:               barberID,
		ServiceDurationMinutes: 30,
		WorkingHours:           mondayOnly(openDay("09:00", "17:00")),
		Now:                    monday,
	})
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestFindNext_HorizonIsExclusive(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))
	in := NextInput{
		StartDate:              monday.AddDate(0, 0, -6),
		MaxDaysAhead:           7,
		BarberID:               barberID,
		ServiceDurationMinutes: 30,
		WorkingHours:           domain.WorkingHours{Monday: openDay("09:00", "17:00")},
		Now:                    monday.AddDate(0, 0, -8),
	}
	// Вторник .. понедельник: понедельник попадает в горизонт последним днем
	next, err := e.FindNext(in)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "2025-03-10", next.Date)

	in.MaxDaysAhead = 6
	next, err = e.FindNext(in)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestFindNext_UsesRulesHorizonByDefault(t *testing.T) {
	r := rules(15, 0, 0)
	r.MaxDaysAhead = 3
	e := NewEngine(r)

	next, err := e.FindNext(NextInput{
		StartDate:              monday.AddDate(0, 0, 1),
		BarberID:               barberID,
		ServiceDurationMinutes: 30,
		WorkingHours:           mondayOnly(openDay("09:00", "17:00")),
		Now:                    monday,
	})
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestFindNext_PropagatesConfigurationError(t *testing.T) {
	e := NewEngine(rules(15, 0, 0))

	_, err := e.FindNext(NextInput{
		StartDate:              monday,
		MaxDaysAhead:           3,
		BarberID:               barberID,
		ServiceDurationMinutes: 0,
		WorkingHours:           mondayOnly(openDay("09:00", "17:00")),
		Now:                    monday,
	})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
