package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("barber-booking")

	m.ObserveSlots(3, 2)
	m.IncAppointmentsCreated()
	m.IncBookingConflict("validator")
	m.IncRateLimited()
	m.IncEmail("confirmation", false)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.SlotsGenerated.WithLabelValues("true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SlotsGenerated.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AppointmentsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingConflicts.WithLabelValues("validator")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EmailsSent.WithLabelValues("confirmation", "error")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveSlots(1, 1)
		m.IncAppointmentsCreated()
		m.IncBookingConflict("storage")
		m.IncRateLimited()
		m.IncEmail("cancellation", true)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("barber-booking")
	m.IncAppointmentsCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "appointments_created_total"))
}
