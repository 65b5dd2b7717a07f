package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the booking and callback flows.
type BookingMetrics struct {
	finalizedTotal    prometheus.Counter
	callbacksTotal    prometheus.Counter
	forwardFailTotal  prometheus.Counter
	providerFallbacks prometheus.Counter
	validationErrors  prometheus.Counter
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		finalizedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vidai",
			Subsystem: "booking",
			Name:      "finalized_total",
			Help:      "Total appointments finalized and persisted",
		}),
		callbacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vidai",
			Subsystem: "booking",
			Name:      "callbacks_total",
			Help:      "Total expert callback requests saved",
		}),
		forwardFailTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vidai",
			Subsystem: "booking",
			Name:      "forward_failures_total",
			Help:      "Total failed remote submissions (booking still completed locally)",
		}),
		providerFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vidai",
			Subsystem: "textgen",
			Name:      "fallbacks_total",
			Help:      "Total times generated copy was replaced with the fixed fallback",
		}),
		validationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vidai",
			Subsystem: "booking",
			Name:      "validation_errors_total",
			Help:      "Total step inputs rejected by validation",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.finalizedTotal, m.callbacksTotal, m.forwardFailTotal, m.providerFallbacks, m.validationErrors)
	return m
}

func (m *BookingMetrics) BookingFinalized() {
	if m == nil {
		return
	}
	m.finalizedTotal.Inc()
}

func (m *BookingMetrics) CallbackSaved() {
	if m == nil {
		return
	}
	m.callbacksTotal.Inc()
}

func (m *BookingMetrics) ForwardFailed() {
	if m == nil {
		return
	}
	m.forwardFailTotal.Inc()
}

func (m *BookingMetrics) ProviderFellBack() {
	if m == nil {
		return
	}
	m.providerFallbacks.Inc()
}

func (m *BookingMetrics) ValidationRejected() {
	if m == nil {
		return
	}
	m.validationErrors.Inc()
}
