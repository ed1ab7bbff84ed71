package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/strapi"
	"github.com/m04kA/SMC-BarberBooking/internal/service/availability"
	"github.com/m04kA/SMC-BarberBooking/pkg/txmanager"
)

// maxCodeAttempts сколько раз пробуем сгенерировать незанятый код подтверждения
const maxCodeAttempts = 3

// Метки стадий, на которых обнаружен конфликт
const (
	conflictStageGrid      = "grid"
	conflictStageValidator = "validator"
	conflictStageStorage   = "storage"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	exceptionRepo   ExceptionRepository
	catalog         CatalogClient
	engine          Engine
	codes           CodeGenerator
	notifier        Notifier
	txManager       TransactionManager
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
	codes CodeGenerator,
	notifier Notifier,
	txManager TransactionManager,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		exceptionRepo:   exceptionRepo,
		catalog:         catalog,
		engine:          engine,
		codes:           codes,
		notifier:        notifier,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Финальная проверка и вставка выполняются в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: barber=%d, service=%d, date=%s, time=%s",
		req.BarberID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Нормализация и валидация входных данных
	normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и правила записи
	now := uc.timeProvider.Now()
	rules := uc.engine.Rules()

	// 3. Проверяем окно записи
	if err := validateDate(rules, req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем барбера
	barber, err := uc.catalog.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, strapi.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 5. Получаем услугу, от нее зависит время окончания
	service, err := uc.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, strapi.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Вычисляем абсолютное время начала и конца в часовом поясе салона
	dayStart, dayEnd := rules.DayRange(req.Date)
	startAt, err := req.Time.OnDate(dayStart, dayStart.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endAt := startAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

	var result *domain.Appointment

	// 7. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Перечитываем записи за день (строки блокируются)
		appointments, err := uc.appointmentRepo.ListByBarber(txCtx, domain.AppointmentsFilter{
			BarberID: barber.ID,
			From:     &dayStart,
			To:       &dayEnd,
		})
		if err != nil {
			if txmanager.IsSerializationFailure(err) {
				return uc.serializationConflict(barber.ID, err)
			}
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.2. Исключения расписания на дату
		exceptions, err := uc.exceptionRepo.ListByBarber(txCtx, barber.ID, dayStart, dayStart)
		if err != nil {
			if txmanager.IsSerializationFailure(err) {
				return uc.serializationConflict(barber.ID, err)
			}
			uc.logger.Error("CreateAppointment: failed to get exceptions: %v", err)
			return fmt.Errorf("%w: failed to get exceptions: %v", ErrInternal, err)
		}

		// 7.3. Время должно быть на сетке и свободно
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
			uc.logger.Error("CreateAppointment: barber=%d, service=%d: %v", barber.ID, service.ID, err)
			return fmt.Errorf("%w: %v", ErrScheduleMisconfigured, err)
		}
		if err := checkSlot(slots, req); err != nil {
			if errors.Is(err, ErrSlotNotAvailable) {
				uc.metrics.IncBookingConflict(conflictStageGrid)
			}
			uc.logger.Warn("CreateAppointment: slot %s %s rejected: %v",
				dayStart.Format(domain.DateFormat), req.Time, err)
			return err
		}

		// 7.4. Финальная проверка пересечений
		if !uc.engine.IsValid(startAt, endAt, barber.ID, appointments) {
			uc.metrics.IncBookingConflict(conflictStageValidator)
			uc.logger.Warn("CreateAppointment: conflict for barber=%d at %s", barber.ID, startAt.Format(time.RFC3339))
			return ErrSlotNotAvailable
		}

		// 7.5. Код подтверждения
		code, err := uc.newConfirmationCode(txCtx)
		if err != nil {
			return err
		}

		// 7.6. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			BarberID:               barber.ID,
			ServiceID:              service.ID,
			StartAt:                startAt,
			EndAt:                  endAt,
			Status:                 domain.StatusConfirmed,
			ClientName:             req.ClientName,
			ClientEmail:            req.ClientEmail,
			ClientPhone:            req.ClientPhone,
			Notes:                  req.Notes,
			ConfirmationCode:       code,
			ServiceName:            service.Name,
			ServiceDurationMinutes: service.DurationMinutes,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.metrics.IncBookingConflict(conflictStageStorage)
				uc.logger.Warn("CreateAppointment: storage rejected slot for barber=%d: %v", barber.ID, err)
				return ErrSlotNotAvailable
			}
			if txmanager.IsSerializationFailure(err) {
				return uc.serializationConflict(barber.ID, err)
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации при коммите или проверке кода - параллельная запись
		if txmanager.IsSerializationFailure(err) {
			return nil, uc.serializationConflict(barber.ID, err)
		}
		if isUsecaseError(err) {
			return nil, err
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.IncAppointmentsCreated()
	uc.logger.Info("CreateAppointment: created appointment id=%d, code=%s", result.ID, result.ConfirmationCode)

	// 8. Письма отправляются после коммита, ошибка не отменяет запись
	uc.notify(ctx, result, barber, rules.Location)

	return &Response{
		ID:               result.ID,
		ConfirmationCode: result.ConfirmationCode,
		BarberID:         barber.ID,
		BarberName:       barber.Name,
		ServiceID:        service.ID,
		ServiceName:      service.Name,
		DurationMinutes:  service.DurationMinutes,
		StartAt:          result.StartAt.In(dayStart.Location()),
		EndAt:            result.EndAt.In(dayStart.Location()),
		Status:           string(result.Status),
		ClientName:       result.ClientName,
		ClientEmail:      result.ClientEmail,
		CreatedAt:        result.CreatedAt,
	}, nil
}

// serializationConflict: postgres откатил транзакцию из-за параллельной записи,
// для клиента это занятое время, а не внутренняя ошибка
func (uc *UseCase) serializationConflict(barberID int64, err error) error {
	uc.metrics.IncBookingConflict(conflictStageStorage)
	uc.logger.Warn("CreateAppointment: serialization failure for barber=%d: %v", barberID, err)
	return ErrSlotNotAvailable
}

// newConfirmationCode генерирует код, которого еще нет в базе.
// Проверка идет до вставки: после ошибки вставки транзакция postgres уже непригодна.
func (uc *UseCase) newConfirmationCode(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code := uc.codes.Generate()

		_, err := uc.appointmentRepo.GetByConfirmationCode(ctx, code)
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return code, nil
		}
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check confirmation code: %v", err)
			// %w для err: конфликт сериализации распознается после транзакции
			return "", fmt.Errorf("%w: failed to check confirmation code: %w", ErrInternal, err)
		}

		uc.logger.Warn("CreateAppointment: confirmation code collision, attempt %d", attempt)
	}

	return "", fmt.Errorf("%w: no free confirmation code after %d attempts", ErrInternal, maxCodeAttempts)
}

func (uc *UseCase) notify(ctx context.Context, appt *domain.Appointment, barber *domain.Barber, loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	start := appt.StartAt.In(loc)

	err := uc.notifier.SendAppointmentConfirmation(ctx, mailer.AppointmentEmail{
		ClientName:       appt.ClientName,
		ClientEmail:      appt.ClientEmail,
		ClientPhone:      appt.ClientPhone,
		BarberName:       barber.Name,
		ServiceName:      appt.ServiceName,
		Date:             start.Format(domain.HumanDateFormat),
		Time:             start.Format(domain.HumanTimeFormat),
		ConfirmationCode: appt.ConfirmationCode,
	})
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to send confirmation for code=%s: %v", appt.ConfirmationCode, err)
	}
}

func isUsecaseError(err error) bool {
	for _, target := range []error{
		ErrInvalidTimeSlot,
		ErrTooLateToBook,
		ErrSlotNotAvailable,
		ErrScheduleMisconfigured,
		ErrInternal,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
