// Package slo publishes availability and error-rate gauges for the HTTP API.
//
// Requests are counted as they complete; Publish turns the counts gathered since
// the previous call into ratios and resets them.
package slo

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SLO targets define the service level objectives for the application.
const (
	// AvailabilitySLO is the target share of requests answered without a 5xx (99.9%)
	AvailabilitySLO = 0.999

	// ErrorRateSLO defines the maximum acceptable error rate as a ratio (0.1% = 0.001)
	ErrorRateSLO = 0.001
)

var (
	// SLOAvailability tracks the availability ratio (0-1) of the last window
	SLOAvailability = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_availability_ratio",
			Help: "Availability ratio (0-1) of the last window, target: 0.999",
		},
	)

	// SLOErrorRate tracks the 5xx ratio (0-1) of the last window
	SLOErrorRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_error_rate_ratio",
			Help: "Error rate ratio (0-1) of the last window, target: 0.001",
		},
	)

	// SLOBreachesTotal counts windows that missed the availability target
	SLOBreachesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slo_availability_breaches_total",
			Help: "Number of windows whose availability was below target",
		},
	)
)

// Window counts requests and server errors.
type Window struct {
	mu            sync.Mutex
	total, failed int
}

// Record counts one finished request with the given status code.
func (w *Window) Record(status int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.total++
	if status >= 500 {
		w.failed++
	}
}

// Flush returns the ratios of the counted requests and starts a new window.
// An empty window is fully available.
func (w *Window) Flush() (availability, errorRate float64, requests int) {
	w.mu.Lock()
	total, failed := w.total, w.failed
	w.total, w.failed = 0, 0
	w.mu.Unlock()

	if total == 0 {
		return 1, 0, 0
	}
	errorRate = float64(failed) / float64(total)
	return 1 - errorRate, errorRate, total
}

var defaultWindow Window

// Record counts a request in the process-wide window.
func Record(status int) {
	defaultWindow.Record(status)
}

// Publish flushes the process-wide window into the gauges and returns the availability.
func Publish() float64 {
	return publish(&defaultWindow)
}

func publish(w *Window) float64 {
	availability, errorRate, requests := w.Flush()
	SLOAvailability.Set(availability)
	SLOErrorRate.Set(errorRate)
	if requests > 0 && availability < AvailabilitySLO {
		SLOBreachesTotal.Inc()
	}
	return availability
}
