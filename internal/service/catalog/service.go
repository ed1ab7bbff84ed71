package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
)

// Service отдает публичный каталог: барберов, услуги и правила записи
type Service struct {
	client CatalogClient
	rules  domain.BookingRules
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(client CatalogClient, rules domain.BookingRules, logger Logger) *Service {
	return &Service{client: client, rules: rules, logger: logger}
}

// ListBarbers возвращает активных барберов в порядке отображения
func (s *Service) ListBarbers(ctx context.Context) ([]models.BarberResponse, error) {
	barbers, err := s.client.ListBarbers(ctx)
	if err != nil {
		s.logger.Error("ListBarbers: failed to get barbers: %v", err)
		return nil, fmt.Errorf("%w: ListBarbers - client error: %v", ErrInternal, err)
	}

	resp := make([]models.BarberResponse, 0, len(barbers))
	for _, b := range barbers {
		resp = append(resp, models.FromDomainBarber(b))
	}

	s.logger.Info("ListBarbers: fetched %d barbers", len(resp))
	return resp, nil
}

// ListServices возвращает активные услуги, опционально только одной категории
func (s *Service) ListServices(ctx context.Context, category *domain.ServiceCategory) ([]models.ServiceResponse, error) {
	services, err := s.client.ListServices(ctx)
	if err != nil {
		s.logger.Error("ListServices: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: ListServices - client error: %v", ErrInternal, err)
	}

	resp := make([]models.ServiceResponse, 0, len(services))
	for _, svc := range services {
		if category != nil && svc.Category != *category {
			continue
		}
		resp = append(resp, models.FromDomainService(svc))
	}

	s.logger.Info("ListServices: fetched %d services", len(resp))
	return resp, nil
}

// BookingRules возвращает правила записи салона
func (s *Service) BookingRules() models.BookingRulesResponse {
	return models.FromDomainRules(s.rules)
}
