package delete_exception

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

func (m *mockService) Delete(ctx context.Context, barberID, id int64) error {
	return m.Called(ctx, barberID, id).Error(0)
}

func serve(svc ExceptionService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/admin/barbers/{barberId}/exceptions/{exceptionId}", NewHandler(svc, logger.Nop()).Handle)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, target, nil))
	return w
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("Delete", mock.Anything, int64(3), int64(9)).Return(nil)
	svc.On("Delete", mock.Anything, int64(3), int64(10)).Return(exceptions.ErrExceptionNotFound)

	assert.Equal(t, http.StatusNoContent, serve(svc, "/admin/barbers/3/exceptions/9").Code)
	assert.Equal(t, http.StatusNotFound, serve(svc, "/admin/barbers/3/exceptions/10").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/admin/barbers/3/exceptions/0").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/admin/barbers/x/exceptions/9").Code)
	svc.AssertExpectations(t)
}
