package exceptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	exceptionRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/exception"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/strapi"
)

// maxListRangeDays ограничение на диапазон выборки
const maxListRangeDays = 366

// Service управляет закрытыми днями барберов и салона
type Service struct {
	repo    ExceptionRepository
	barbers BarberGetter
	logger  Logger
}

// NewService создает новый экземпляр сервиса исключений
func NewService(repo ExceptionRepository, barbers BarberGetter, logger Logger) *Service {
	return &Service{repo: repo, barbers: barbers, logger: logger}
}

// Create закрывает дату для барбера (или для всего салона при BarberID == 0)
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*ExceptionResponse, error) {
	s.logger.Info("Create: closing date=%s for barber=%d", req.Date.Format(domain.DateFormat), req.BarberID)

	if req.BarberID < 0 || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: barberId and date are required", ErrInvalidInput)
	}

	var reason *string
	if req.Reason != nil {
		trimmed := strings.TrimSpace(*req.Reason)
		if utf8.RuneCountInString(trimmed) > domain.MaxExceptionReasonLength {
			return nil, fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxExceptionReasonLength)
		}
		if trimmed != "" {
			reason = &trimmed
		}
	}

	if req.BarberID != exceptionRepo.ShopWideBarberID {
		if err := s.checkBarber(ctx, req.BarberID); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.Create(ctx, &domain.ScheduleException{
		BarberID: req.BarberID,
		Date:     req.Date,
		IsClosed: true,
		Reason:   reason,
	})
	if err != nil {
		if errors.Is(err, exceptionRepo.ErrDuplicateException) {
			s.logger.Warn("Create: barber=%d already has exception on %s", req.BarberID, req.Date.Format(domain.DateFormat))
			return nil, ErrAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created exception id=%d", created.ID)
	resp := fromDomain(created)
	return &resp, nil
}

// List возвращает исключения барбера вместе с закрытиями всего салона
func (s *Service) List(ctx context.Context, req *ListRequest) ([]ExceptionResponse, error) {
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidInput)
	}
	if req.To.Sub(req.From) > maxListRangeDays*24*time.Hour {
		return nil, fmt.Errorf("%w: range is limited to %d days", ErrInvalidInput, maxListRangeDays)
	}

	list, err := s.repo.ListByBarber(ctx, req.BarberID, req.From, req.To)
	if err != nil {
		s.logger.Error("List: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := make([]ExceptionResponse, 0, len(list))
	for _, ex := range list {
		resp = append(resp, fromDomain(ex))
	}
	return resp, nil
}

// Delete снимает закрытие даты
func (s *Service) Delete(ctx context.Context, barberID, id int64) error {
	s.logger.Info("Delete: exception id=%d of barber=%d", id, barberID)

	if err := s.repo.Delete(ctx, barberID, id); err != nil {
		if errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
			return ErrExceptionNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) checkBarber(ctx context.Context, barberID int64) error {
	if _, err := s.barbers.GetBarber(ctx, barberID); err != nil {
		if errors.Is(err, strapi.ErrBarberNotFound) {
			s.logger.Warn("checkBarber: barber id=%d not found", barberID)
			return ErrBarberNotFound
		}
		s.logger.Error("checkBarber: failed to get barber id=%d: %v", barberID, err)
		return fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}
	return nil
}
