package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.BookingFinalized()
	m.BookingFinalized()
	m.CallbackSaved()
	m.ForwardFailed()
	m.ProviderFellBack()
	m.ValidationRejected()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.finalizedTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.callbacksTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.forwardFailTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.providerFallbacks))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.validationErrors))
}

func TestNilReceiverIsSafe(t *testing.T) {
	var m *BookingMetrics
	assert.NotPanics(t, func() {
		m.BookingFinalized()
		m.CallbackSaved()
		m.ForwardFailed()
		m.ProviderFellBack()
		m.ValidationRejected()
	})
}
