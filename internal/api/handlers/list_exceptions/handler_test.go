package list_exceptions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/service/exceptions"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, req *exceptions.ListRequest) ([]exceptions.ExceptionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]exceptions.ExceptionResponse), args.Error(1)
}

func serve(svc ExceptionService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/admin/barbers/{barberId}/exceptions", NewHandler(svc, logger.Nop()).Handle)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, mock.MatchedBy(func(req *exceptions.ListRequest) bool {
		return req.BarberID == 3
	})).Return([]exceptions.ExceptionResponse{
		{ID: 1, Date: "2025-12-25", IsClosed: true, ShopWide: true},
		{ID: 2, BarberID: 3, Date: "2025-12-26", IsClosed: true},
	}, nil)

	w := serve(svc, "/admin/barbers/3/exceptions?from=2025-12-01&to=2025-12-31")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"exceptions":[`)
	assert.Contains(t, w.Body.String(), `"date":"2025-12-26"`)
}

func TestHandle_BadRange(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, mock.Anything).Return(nil, exceptions.ErrInvalidInput)

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/admin/barbers/3/exceptions?from=2025-12-31&to=2025-12-01").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/admin/barbers/3/exceptions?from=2025-12-01").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/admin/barbers/3/exceptions?from=x&to=2025-12-01").Code)
}
