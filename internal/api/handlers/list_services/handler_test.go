package list_services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListServices(ctx context.Context, category *domain.ServiceCategory) ([]models.ServiceResponse, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceResponse), args.Error(1)
}

func serve(svc CatalogService, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle_FilterByCategory(t *testing.T) {
	svc := &mockService{}
	svc.On("ListServices", mock.Anything, mock.MatchedBy(func(c *domain.ServiceCategory) bool {
		return c != nil && *c == domain.CategoryShave
	})).Return([]models.ServiceResponse{{ID: 2, Name: "Beard Trim", Category: "shave", CategoryLabel: "Shaves"}}, nil)

	w := serve(svc, "/services?category=shave")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"categoryLabel":"Shaves"`)
}

func TestHandle_AllServicesEmpty(t *testing.T) {
	svc := &mockService{}
	svc.On("ListServices", mock.Anything, (*domain.ServiceCategory)(nil)).Return(nil, nil)

	w := serve(svc, "/services")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"services":[]}`, w.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	svc := &mockService{}
	svc.On("ListServices", mock.Anything, mock.Anything).Return(nil, errors.New("cms down"))

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/services?category=massage").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(svc, "/services").Code)
}
