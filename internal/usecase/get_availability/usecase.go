package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/strapi"
	"github.com/m04kA/SMC-BarberBooking/internal/service/availability"
)

// UseCase use case для получения сетки слотов барбера на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	exceptionRepo   ExceptionRepository
	catalog         CatalogClient
	engine          Engine
	metrics         MetricsCollector
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	exceptionRepo ExceptionRepository,
	catalog CatalogClient,
	engine Engine,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		exceptionRepo:   exceptionRepo,
		catalog:         catalog,
		engine:          engine,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: barber=%d, service=%d, date=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и правила записи
	now := uc.timeProvider.Now()
	rules := uc.engine.Rules()

	// 3. Проверяем окно записи
	if err := validateDate(rules, req.Date, now); err != nil {
		uc.logger.Warn("GetAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем барбера
	barber, err := uc.catalog.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, strapi.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailability: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailability: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 5. Получаем услугу
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, strapi.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Получаем активные записи барбера за день
	dayStart, dayEnd := rules.DayRange(req.Date)
	appointments, err := uc.appointmentRepo.ListByBarber(ctx, domain.AppointmentsFilter{
		BarberID: barber.ID,
		From:     &dayStart,
		To:       &dayEnd,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Получаем исключения расписания на дату
	exceptions, err := uc.exceptionRepo.ListByBarber(ctx, barber.ID, dayStart, dayStart)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get exceptions for barber=%d: %v", barber.ID, err)
		return nil, fmt.Errorf("%w: failed to get exceptions: %v", ErrInternal, err)
	}

	// 8. Строим сетку слотов
	slots, err := uc.engine.GenerateSlots(availability.SlotsInput{
		Date:                   dayStart,
		BarberID:               barber.ID,
		ServiceDurationMinutes: service.DurationMinutes,
		WorkingHours:           barber.WorkingHours,
		Appointments:           appointments,
		Exceptions:             exceptions,
		Now:                    now,
	})
	if err != nil {
		if errors.Is(err, availability.ErrInvalidConfiguration) || errors.Is(err, availability.ErrInvalidSchedule) {
			uc.logger.Error("GetAvailability: barber=%d, service=%d: %v", barber.ID, service.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
		}
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:                   dayStart,
		BarberID:               barber.ID,
		ServiceID:              service.ID,
		ServiceDurationMinutes: service.DurationMinutes,
		Timezone:               dayStart.Location().String(),
		Slots:                  slots,
	}

	available := resp.AvailableCount()
	uc.metrics.ObserveSlots(available, len(slots)-available)

	uc.logger.Info("GetAvailability: barber=%d, date=%s: %d slots, %d available",
		barber.ID, dayStart.Format(domain.DateFormat), len(slots), available)

	return resp, nil
}
