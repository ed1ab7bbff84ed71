package strapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Client клиент для чтения барберов и услуг из Strapi
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Strapi
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBarber получает активного барбера вместе с рабочими часами
func (c *Client) GetBarber(ctx context.Context, barberID int64) (*domain.Barber, error) {
	var resp singleResponse[BarberAttributes]
	if err := c.get(ctx, fmt.Sprintf("/api/barbers/%d", barberID), nil, &resp, ErrBarberNotFound); err != nil {
		return nil, err
	}
	if resp.Data == nil || !resp.Data.Attributes.IsActive {
		return nil, ErrBarberNotFound
	}

	barber, err := toDomainBarber(*resp.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return barber, nil
}

// ListBarbers возвращает активных барберов в порядке отображения
func (c *Client) ListBarbers(ctx context.Context) ([]*domain.Barber, error) {
	query := url.Values{}
	query.Set("sort", "order:asc")
	query.Set("filters[isActive][$eq]", "true")

	var resp listResponse[BarberAttributes]
	if err := c.get(ctx, "/api/barbers", query, &resp, ErrBarberNotFound); err != nil {
		return nil, err
	}

	barbers := make([]*domain.Barber, 0, len(resp.Data))
	for _, e := range resp.Data {
		if !e.Attributes.IsActive {
			continue
		}
		b, err := toDomainBarber(e)
		if err != nil {
			// Один сломанный барбер не должен скрывать остальных
			c.log.Warn("Strapi: skipping barber id=%d: %v", e.ID, err)
			continue
		}
		barbers = append(barbers, b)
	}
	sort.SliceStable(barbers, func(i, j int) bool { return barbers[i].Order < barbers[j].Order })

	return barbers, nil
}

// GetService получает активную услугу
func (c *Client) GetService(ctx context.Context, serviceID int64) (*domain.Service, error) {
	var resp singleResponse[ServiceAttributes]
	if err := c.get(ctx, fmt.Sprintf("/api/services/%d", serviceID), nil, &resp, ErrServiceNotFound); err != nil {
		return nil, err
	}
	if resp.Data == nil || !resp.Data.Attributes.IsActive {
		return nil, ErrServiceNotFound
	}

	service, err := toDomainService(*resp.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return service, nil
}

// ListServices возвращает активные услуги в порядке отображения
func (c *Client) ListServices(ctx context.Context) ([]*domain.Service, error) {
	query := url.Values{}
	query.Set("sort", "order:asc")
	query.Set("filters[isActive][$eq]", "true")

	var resp listResponse[ServiceAttributes]
	if err := c.get(ctx, "/api/services", query, &resp, ErrServiceNotFound); err != nil {
		return nil, err
	}

	services := make([]*domain.Service, 0, len(resp.Data))
	for _, e := range resp.Data {
		if !e.Attributes.IsActive {
			continue
		}
		s, err := toDomainService(e)
		if err != nil {
			c.log.Warn("Strapi: skipping service id=%d: %v", e.ID, err)
			continue
		}
		services = append(services, s)
	}
	sort.SliceStable(services, func(i, j int) bool { return services[i].Order < services[j].Order })

	return services, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}, notFound error) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var strapiErr ErrorResponse
		if json.Unmarshal(body, &strapiErr) == nil && strapiErr.Error.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, strapiErr.Error.Message)
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
