// Package prometheus implements MechParse parser metrics on top of the
// Prometheus client. Callers depend on the ParserMetrics interface; the noop
// implementation serves tests and metric-disabled deployments.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ParserMetrics records parsing activity. Implementations must be safe for
// concurrent use.
type ParserMetrics interface {
	// RecordBlockParse observes a completed block parse: how many entries it
	// contained, how long it took, and whether it succeeded overall.
	RecordBlockParse(entries int, d time.Duration, success bool)

	// RecordEntryFailure counts a failed entry by its error code.
	RecordEntryFailure(code string)

	// RecordHTTPRequest observes one API request by route, status class and
	// latency.
	RecordHTTPRequest(route string, status int, d time.Duration)
}

type parserMetrics struct {
	blockParses   *prometheus.CounterVec
	blockEntries  prometheus.Histogram
	blockDuration prometheus.Histogram
	entryFailures *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewParserMetrics constructs ParserMetrics registered on reg. Passing
// prometheus.DefaultRegisterer wires the standard /metrics exposition; tests
// pass a fresh prometheus.NewRegistry.
func NewParserMetrics(reg prometheus.Registerer) ParserMetrics {
	m := &parserMetrics{
		blockParses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mechparse",
			Name:      "block_parses_total",
			Help:      "Reaction block parses by outcome.",
		}, []string{"outcome"}),
		blockEntries: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mechparse",
			Name:      "block_entries",
			Help:      "Reaction entries per parsed block.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		blockDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mechparse",
			Name:      "block_parse_duration_seconds",
			Help:      "Wall time to parse one reaction block.",
			Buckets:   prometheus.DefBuckets,
		}),
		entryFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mechparse",
			Name:      "entry_failures_total",
			Help:      "Failed reaction entries by error code.",
		}, []string{"code"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mechparse",
			Name:      "http_requests_total",
			Help:      "API requests by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mechparse",
			Name:      "http_request_duration_seconds",
			Help:      "API request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	reg.MustRegister(
		m.blockParses, m.blockEntries, m.blockDuration,
		m.entryFailures, m.httpRequests, m.httpDuration,
	)
	return m
}

func (m *parserMetrics) RecordBlockParse(entries int, d time.Duration, success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.blockParses.WithLabelValues(outcome).Inc()
	m.blockEntries.Observe(float64(entries))
	m.blockDuration.Observe(d.Seconds())
}

func (m *parserMetrics) RecordEntryFailure(code string) {
	m.entryFailures.WithLabelValues(code).Inc()
}

func (m *parserMetrics) RecordHTTPRequest(route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(route, statusClass(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}

func statusClass(status int) string {
	switch {
	case status < 200:
		return "1xx"
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

type noopMetrics struct{}

func (noopMetrics) RecordBlockParse(int, time.Duration, bool)    {}
func (noopMetrics) RecordEntryFailure(string)                    {}
func (noopMetrics) RecordHTTPRequest(string, int, time.Duration) {}

// NewNoopMetrics returns a ParserMetrics that records nothing.
func NewNoopMetrics() ParserMetrics { return noopMetrics{} }
