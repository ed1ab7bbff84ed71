package get_next_available

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/strapi"
	"github.com/m04kA/SMC-BarberBooking/internal/service/availability"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

type mockAppointments struct{ mock.Mock }

func (m *mockAppointments) ListByBarber(ctx context.Context, f domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}

type mockExceptions struct{ mock.Mock }

func (m *mockExceptions) ListByBarber(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.ScheduleException, error) {
	args := m.Called(ctx, barberID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduleException), args.Error(1)
}

type mockCatalog struct{ mock.Mock }

func (m *mockCatalog) GetBarber(ctx context.Context, id int64) (*domain.Barber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Barber), args.Error(1)
}

func (m *mockCatalog) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

// 2025-03-10 - понедельник
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func newUseCase(appts *mockAppointments, exc *mockExceptions, catalog *mockCatalog, now time.Time) *UseCase {
	engine := availability.NewEngine(domain.BookingRules{
		SlotIntervalMinutes: 30,
		LeadTimeHours:       2,
		MaxDaysAhead:        7,
		Location:            time.UTC,
	})
	uc := NewUseCase(appts, exc, catalog, engine, logger.Nop())
	uc.timeProvider = fixedTime(now)
	return uc
}

func mondayBarber() *domain.Barber {
	return &domain.Barber{
		ID: 1,
		WorkingHours: domain.WorkingHours{
			Monday: domain.DaySchedule{
				Enabled: true,
				Start:   ptr.Ptr(types.TimeString("09:00")),
				End:     ptr.Ptr(types.TimeString("17:00")),
			},
		},
	}
}

func TestExecute_FindsSlotAfterLeadTime(t *testing.T) {
	ctx := context.Background()
	appts, exc, catalog := &mockAppointments{}, &mockExceptions{}, &mockCatalog{}
	// Понедельник 10:10: ближайший слот с учетом двух часов - 12:30
	uc := newUseCase(appts, exc, catalog, monday.Add(10*time.Hour+10*time.Minute))

	from, to := monday, monday.AddDate(0, 0, 7)
	catalog.On("GetBarber", ctx, int64(1)).Return(mondayBarber(), nil)
	catalog.On("GetService", ctx, int64(2)).Return(&domain.Service{ID: 2, DurationMinutes: 45}, nil)
	appts.On("ListByBarber", ctx, domain.AppointmentsFilter{BarberID: 1, From: &from, To: &to}).
		Return([]*domain.Appointment{}, nil)
	exc.On("ListByBarber", ctx, int64(1), from, monday.AddDate(0, 0, 6)).
		Return([]*domain.ScheduleException{}, nil)

	resp, err := uc.Execute(ctx, &Request{BarberID: 1, ServiceID: 2})
	require.NoError(t, err)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, "2025-03-10", resp.Slot.Date)
	assert.Equal(t, types.TimeString("12:30"), resp.Slot.Time)
	assert.Equal(t, 7, resp.MaxDaysAhead)
}

func TestExecute_NothingInWindow(t *testing.T) {
	ctx := context.Background()
	appts, exc, catalog := &mockAppointments{}, &mockExceptions{}, &mockCatalog{}
	// Окно со вторника: единственный рабочий день - следующий понедельник, он закрыт исключением
	tuesday := monday.AddDate(0, 0, 1)
	uc := newUseCase(appts, exc, catalog, tuesday.Add(8*time.Hour))

	catalog.On("GetBarber", ctx, int64(1)).Return(mondayBarber(), nil)
	catalog.On("GetService", ctx, int64(2)).Return(&domain.Service{ID: 2, DurationMinutes: 30}, nil)
	appts.On("ListByBarber", ctx, mock.Anything).Return([]*domain.Appointment{}, nil)
	exc.On("ListByBarber", ctx, int64(1), tuesday, tuesday.AddDate(0, 0, 6)).
		Return([]*domain.ScheduleException{{BarberID: 1, Date: monday.AddDate(0, 0, 7), IsClosed: true}}, nil)

	resp, err := uc.Execute(ctx, &Request{BarberID: 1, ServiceID: 2})
	require.NoError(t, err)
	assert.Nil(t, resp.Slot)
}

func TestExecute_Errors(t *testing.T) {
	ctx := context.Background()

	uc := newUseCase(&mockAppointments{}, &mockExceptions{}, &mockCatalog{}, monday)
	_, err := uc.Execute(ctx, &Request{BarberID: 0, ServiceID: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)

	catalog := &mockCatalog{}
	catalog.On("GetBarber", ctx, int64(1)).Return(nil, strapi.ErrBarberNotFound)
	uc = newUseCase(&mockAppointments{}, &mockExceptions{}, catalog, monday)
	_, err = uc.Execute(ctx, &Request{BarberID: 1, ServiceID: 2})
	assert.ErrorIs(t, err, ErrBarberNotFound)

	catalog = &mockCatalog{}
	catalog.On("GetBarber", ctx, int64(1)).Return(mondayBarber(), nil)
	catalog.On("GetService", ctx, int64(2)).Return(nil, strapi.ErrServiceNotFound)
	uc = newUseCase(&mockAppointments{}, &mockExceptions{}, catalog, monday)
	_, err = uc.Execute(ctx, &Request{BarberID: 1, ServiceID: 2})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
