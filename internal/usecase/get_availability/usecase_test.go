package get_availability

import (
	"context"
	"errors"
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

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) ObserveSlots(available, unavailable int) { m.Called(available, unavailable) }

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

// 2025-03-10 - понедельник
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func testBarber() *domain.Barber {
	return &domain.Barber{
		ID:       1,
		Name:     "Marcus",
		IsActive: true,
		WorkingHours: domain.WorkingHours{
			Monday: domain.DaySchedule{
				Enabled: true,
				Start:   ptr.Ptr(types.TimeString("09:00")),
				End:     ptr.Ptr(types.TimeString("12:00")),
			},
		},
	}
}

type fixture struct {
	appts      *mockAppointments
	exceptions *mockExceptions
	catalog    *mockCatalog
	metrics    *mockMetrics
	uc         *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		appts:      &mockAppointments{},
		exceptions: &mockExceptions{},
		catalog:    &mockCatalog{},
		metrics:    &mockMetrics{},
	}
	engine := availability.NewEngine(domain.BookingRules{
		SlotIntervalMinutes: 30,
		LeadTimeHours:       2,
		MaxDaysAhead:        30,
		Location:            time.UTC,
	})
	f.uc = NewUseCase(f.appts, f.exceptions, f.catalog, engine, f.metrics, logger.Nop())
	f.uc.timeProvider = fixedTime{t: monday.Add(-12 * time.Hour)}
	return f
}

func TestExecute_BuildsGrid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dayEnd := monday.AddDate(0, 0, 1)

	f.catalog.On("GetBarber", ctx, int64(1)).Return(testBarber(), nil)
	f.catalog.On("GetService", ctx, int64(7)).Return(&domain.Service{ID: 7, DurationMinutes: 30}, nil)
	f.appts.On("ListByBarber", ctx, domain.AppointmentsFilter{BarberID: 1, From: &monday, To: &dayEnd}).
		Return([]*domain.Appointment{{
			BarberID: 1,
			StartAt:  monday.Add(10 * time.Hour),
			EndAt:    monday.Add(10*time.Hour + 30*time.Minute),
			Status:   domain.StatusConfirmed,
		}}, nil)
	f.exceptions.On("ListByBarber", ctx, int64(1), monday, monday).Return([]*domain.ScheduleException{}, nil)
	f.metrics.On("ObserveSlots", 5, 1).Return()

	resp, err := f.uc.Execute(ctx, &Request{BarberID: 1, ServiceID: 7, Date: monday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 6)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].Time)
	assert.Equal(t, types.TimeString("11:30"), resp.Slots[5].Time)
	assert.Equal(t, domain.ReasonBooked, resp.Slots[2].Reason)
	assert.Equal(t, 5, resp.AvailableCount())
	assert.Equal(t, "UTC", resp.Timezone)
	f.metrics.AssertExpectations(t)
}

func TestExecute_ClosedByException(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.catalog.On("GetBarber", ctx, int64(1)).Return(testBarber(), nil)
	f.catalog.On("GetService", ctx, int64(7)).Return(&domain.Service{ID: 7, DurationMinutes: 30}, nil)
	f.appts.On("ListByBarber", ctx, mock.Anything).Return([]*domain.Appointment{}, nil)
	f.exceptions.On("ListByBarber", ctx, int64(1), monday, monday).
		Return([]*domain.ScheduleException{{BarberID: 1, Date: monday, IsClosed: true}}, nil)
	f.metrics.On("ObserveSlots", 0, 0).Return()

	resp, err := f.uc.Execute(ctx, &Request{BarberID: 1, ServiceID: 7, Date: monday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DateWindow(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 7, Date: monday.AddDate(0, 0, -2)})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = f.uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 7, Date: monday.AddDate(0, 0, 40)})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	f.catalog.AssertNotCalled(t, "GetBarber", mock.Anything, mock.Anything)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{ServiceID: 7, Date: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CatalogErrors(t *testing.T) {
	ctx := context.Background()

	f := newFixture(t)
	f.catalog.On("GetBarber", ctx, int64(1)).Return(nil, strapi.ErrBarberNotFound)
	_, err := f.uc.Execute(ctx, &Request{BarberID: 1, ServiceID: 7, Date: monday})
	assert.ErrorIs(t, err, ErrBarberNotFound)

	f = newFixture(t)
	f.catalog.On("GetBarber", ctx, int64(1)).Return(testBarber(), nil)
	f.catalog.On("GetService", ctx, int64(7)).Return(nil, strapi.ErrServiceNotFound)
	_, err = f.uc.Execute(ctx, &Request{BarberID: 1, ServiceID: 7, Date: monday})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	f = newFixture(t)
	f.catalog.On("GetBarber", ctx, int64(1)).Return(nil, strapi.ErrInternal)
	_, err = f.uc.Execute(ctx, &Request{BarberID: 1, ServiceID: 7, Date: monday})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_RepositoryError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.catalog.On("GetBarber", ctx, int64(1)).Return(testBarber(), nil)
	f.catalog.On("GetService", ctx, int64(7)).Return(&domain.Service{ID: 7, DurationMinutes: 30}, nil)
	f.appts.On("ListByBarber", ctx, mock.Anything).Return(nil, errors.New("db down"))

	_, err := f.uc.Execute(ctx, &Request{BarberID: 1, ServiceID: 7, Date: monday})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_MisconfiguredService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.catalog.On("GetBarber", ctx, int64(1)).Return(testBarber(), nil)
	f.catalog.On("GetService", ctx, int64(7)).Return(&domain.Service{ID: 7, DurationMinutes: 0}, nil)
	f.appts.On("ListByBarber", ctx, mock.Anything).Return([]*domain.Appointment{}, nil)
	f.exceptions.On("ListByBarber", ctx, int64(1), monday, monday).Return([]*domain.ScheduleException{}, nil)

	_, err := f.uc.Execute(ctx, &Request{BarberID: 1, ServiceID: 7, Date: monday})
	assert.ErrorIs(t, err, ErrScheduleMisconfigured)
}
