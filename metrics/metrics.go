package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type instrumentedTransport struct {
	next     http.RoundTripper
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// InstrumentTransport decorates an http.RoundTripper with request counting
// and duration tracking. Pass the result as transport override when building
// the REST client. Metrics land on the given registry so library consumers
// stay in control of what gets exposed; transports of multiple clients need
// separate registries or the registration will panic on the duplicate.
func InstrumentTransport(reg prometheus.Registerer, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telesign_client_requests_total",
			Help: "Number of dispatched API requests. Transport failures get status label error.",
		},
		[]string{"method", "status"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "telesign_client_request_duration_seconds",
			Help:    "Wall time of API exchanges as observed around the transport.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
	reg.MustRegister(requests, duration)
	return &instrumentedTransport{
		next:     next,
		requests: requests,
		duration: duration,
	}
}

func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	startTime := time.Now()
	resp, err := t.next.RoundTrip(req)
	t.duration.WithLabelValues(req.Method).Observe(time.Since(startTime).Seconds())
	if err != nil {
		t.requests.WithLabelValues(req.Method, "error").Inc()
		return resp, err
	}
	t.requests.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}
