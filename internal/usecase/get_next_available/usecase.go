package get_next_available

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/strapi"
	"github.com/m04kA/SMC-BarberBooking/internal/service/availability"
)

// UseCase ищет первый свободный слот барбера начиная с сегодняшнего дня
type UseCase struct {
	appointmentRepo AppointmentRepository
	exceptionRepo   ExceptionRepository
	catalog         CatalogClient
	engine          Engine
	timeProvider    TimeProvider
	logger          Logger
}

func NewUseCase(
	appointmentRepo AppointmentRepository,
	exceptionRepo ExceptionRepository,
	catalog CatalogClient,
	engine Engine,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		exceptionRepo:   exceptionRepo,
		catalog:         catalog,
		engine:          engine,
		timeProvider:    realTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет поиск. Записи и исключения загружаются одним запросом на всё окно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetNextAvailable: barber=%d, service=%d", req.BarberID, req.ServiceID)

	if req.BarberID <= 0 || req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: barberId and serviceId must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	rules := uc.engine.Rules()

	barber, err := uc.catalog.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, strapi.ErrBarberNotFound) {
			uc.logger.Warn("GetNextAvailable: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetNextAvailable: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, strapi.ErrServiceNotFound) {
			uc.logger.Warn("GetNextAvailable: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetNextAvailable: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Окно поиска: [сегодня, сегодня+MaxDaysAhead)
	from := rules.Today(now)
	to := from.AddDate(0, 0, rules.MaxDaysAhead)

	appointments, err := uc.appointmentRepo.ListByBarber(ctx, domain.AppointmentsFilter{
		BarberID: barber.ID,
		From:     &from,
		To:       &to,
	})
	if err != nil {
		uc.logger.Error("GetNextAvailable: failed to get appointments for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	exceptions, err := uc.exceptionRepo.ListByBarber(ctx, barber.ID, from, to.AddDate(0, 0, -1))
	if err != nil {
		uc.logger.Error("GetNextAvailable: failed to get exceptions for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: failed to get exceptions: %v", ErrInternal, err)
	}

	next, err := uc.engine.FindNext(availability.NextInput{
		StartDate:              from,
		MaxDaysAhead:           rules.MaxDaysAhead,
		BarberID:               barber.ID,
		ServiceDurationMinutes: service.DurationMinutes,
		WorkingHours:           barber.WorkingHours,
		Appointments:           appointments,
		Exceptions:             exceptions,
		Now:                    now,
	})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidConfiguration) || errors.Is(err, availability.ErrInvalidSchedule) {
			uc.logger.Error("GetNextAvailable: barber=%d, service=%d: %v", barber.ID, service.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
		}
		return nil, fmt.Errorf("%w: failed to find next slot: %v", ErrInternal, err)
	}

	if next == nil {
		uc.logger.Info("GetNextAvailable: barber=%d has no free slots in %d days", barber.ID, rules.MaxDaysAhead)
	} else {
		uc.logger.Info("GetNextAvailable: barber=%d, next slot %s %s", barber.ID, next.Date, next.Time)
	}

	return &Response{
		BarberID:     barber.ID,
		ServiceID:    service.ID,
		MaxDaysAhead: rules.MaxDaysAhead,
		Slot:         next,
	}, nil
}
