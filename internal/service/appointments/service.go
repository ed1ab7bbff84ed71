package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/mailer"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberBooking/internal/service/confirmation"
)

// Service сервис для работы с существующими записями
type Service struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	txManager       TransactionManager
	rules           domain.BookingRules
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	notifier Notifier,
	txManager TransactionManager,
	rules domain.BookingRules,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		txManager:       txManager,
		rules:           rules,
		logger:          logger,
	}
}

// GetByCode получает запись по коду подтверждения
func (s *Service) GetByCode(ctx context.Context, code string) (*models.AppointmentResponse, error) {
	code, err := normalizeCode(code)
	if err != nil {
		s.logger.Warn("GetByCode: %v", err)
		return nil, err
	}

	appt, err := s.getByCode(ctx, "GetByCode", code)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appt, s.rules.Location), nil
}

// Cancel отменяет запись по запросу клиента.
// Клиент подтверждает владение записью своим email.
func (s *Service) Cancel(ctx context.Context, code string, req *models.CancelRequest) (*models.AppointmentResponse, error) {
	code, err := normalizeCode(code)
	if err != nil {
		s.logger.Warn("Cancel: %v", err)
		return nil, err
	}
	if err := validateReason(req.Reason); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.logger.Info("Cancel: cancelling appointment code=%s", code)

	var cancelled *domain.Appointment
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.getByCode(txCtx, "Cancel", code)
		if err != nil {
			return err
		}

		if email == "" || !strings.EqualFold(appt.ClientEmail, email) {
			s.logger.Warn("Cancel: email mismatch for code=%s", code)
			return ErrAccessDenied
		}

		if !appt.CanBeCancelled() {
			s.logger.Warn("Cancel: code=%s cannot be cancelled, status=%s", code, appt.Status)
			return ErrCannotCancel
		}

		if err := s.appointmentRepo.Cancel(txCtx, appt.ID, req.Reason); err != nil {
			return s.mapRepoError("Cancel", appt.ID, err, ErrCannotCancel)
		}

		cancelled, err = s.getByCode(txCtx, "Cancel", code)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", cancelled.ID)
	s.notifyCancelled(ctx, cancelled)

	return models.FromDomainAppointment(cancelled, s.rules.Location), nil
}

// ListByBarber получает записи барбера для администратора
func (s *Service) ListByBarber(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	if req.BarberID <= 0 {
		return nil, fmt.Errorf("%w: barberId must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter(s.rules)
	if err != nil {
		s.logger.Warn("ListByBarber: invalid filter for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	list, err := s.appointmentRepo.ListByBarber(ctx, filter)
	if err != nil {
		s.logger.Error("ListByBarber: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: ListByBarber - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByBarber: fetched %d appointments for barber=%d", len(list), req.BarberID)
	return models.FromDomainAppointmentList(list, s.rules.Location), nil
}

// UpdateStatus меняет статус записи (администратор).
// Допустимы только переходы из confirmed.
func (s *Service) UpdateStatus(ctx context.Context, code string, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	code, err := normalizeCode(code)
	if err != nil {
		s.logger.Warn("UpdateStatus: %v", err)
		return nil, err
	}

	newStatus, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for code=%s", req.Status, code)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	if err := validateReason(req.Reason); err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: code=%s -> %s", code, newStatus)

	var updated *domain.Appointment
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.getByCode(txCtx, "UpdateStatus", code)
		if err != nil {
			return err
		}

		if !appt.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: code=%s transition %s -> %s rejected", code, appt.Status, newStatus)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, newStatus)
		}

		if newStatus == domain.StatusCancelled {
			err = s.appointmentRepo.Cancel(txCtx, appt.ID, req.Reason)
		} else {
			err = s.appointmentRepo.UpdateStatus(txCtx, appt.ID, newStatus)
		}
		if err != nil {
			return s.mapRepoError("UpdateStatus", appt.ID, err, ErrInvalidTransition)
		}

		updated, err = s.getByCode(txCtx, "UpdateStatus", code)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: appointment id=%d is now %s", updated.ID, updated.Status)
	if updated.Status == domain.StatusCancelled {
		s.notifyCancelled(ctx, updated)
	}

	return models.FromDomainAppointment(updated, s.rules.Location), nil
}

// Вспомогательные методы

func (s *Service) getByCode(ctx context.Context, op, code string) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment code=%s not found", op, code)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for code=%s: %v", op, code, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}

// mapRepoError: statusErr возвращается, если параллельный запрос уже сменил статус
func (s *Service) mapRepoError(op string, id int64, err, statusErr error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment id=%d not found during update", op, id)
		return ErrAppointmentNotFound
	}
	if errors.Is(err, appointmentRepo.ErrStatusChanged) {
		s.logger.Warn("%s: appointment id=%d status changed concurrently", op, id)
		return statusErr
	}
	s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func (s *Service) notifyCancelled(ctx context.Context, appt *domain.Appointment) {
	loc := s.rules.Location
	if loc == nil {
		loc = domain.DefaultBookingRules().Location
	}
	start := appt.StartAt.In(loc)

	data := mailer.AppointmentEmail{
		ClientName:       appt.ClientName,
		ClientEmail:      appt.ClientEmail,
		ClientPhone:      appt.ClientPhone,
		ServiceName:      appt.ServiceName,
		Date:             start.Format(domain.HumanDateFormat),
		Time:             start.Format(domain.HumanTimeFormat),
		ConfirmationCode: appt.ConfirmationCode,
	}
	if appt.CancellationReason != nil {
		data.Reason = *appt.CancellationReason
	}

	if err := s.notifier.SendCancellation(ctx, data); err != nil {
		s.logger.Warn("notifyCancelled: failed to send email for code=%s: %v", appt.ConfirmationCode, err)
	}
}

func normalizeCode(code string) (string, error) {
	code = confirmation.Normalize(code)
	if !confirmation.IsWellFormed(code) {
		return "", fmt.Errorf("%w: malformed confirmation code", ErrInvalidInput)
	}
	return code, nil
}

func validateReason(reason *string) error {
	if reason != nil && utf8.RuneCountInString(*reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}
	return nil
}
