package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/proxystack/tlstriage/internal/models"
)

var (
	reportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tlstriage",
			Name:      "reports_total",
			Help:      "Total number of failure reports handled, partitioned by cause and phase.",
		},
		[]string{"cause", "phase"},
	)

	tlsRelatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tlstriage",
			Name:      "tls_related_total",
			Help:      "Number of reports whose error text matched a TLS failure indicator.",
		},
	)

	suppressedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tlstriage",
			Name:      "suppressed_total",
			Help:      "Number of duplicate reports suppressed by deduplication.",
		},
	)

	reportDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tlstriage",
			Name:      "report_seconds",
			Help:      "Report handling latency in seconds, including emission.",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)
)

// Register attaches the tlstriage collectors to the supplied registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		reportsTotal,
		tlsRelatedTotal,
		suppressedTotal,
		reportDurationSeconds,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveReport records one handled failure report.
func ObserveReport(cause models.FailureCause, phase models.Phase, tlsRelated, suppressed bool, duration time.Duration) {
	reportsTotal.WithLabelValues(string(cause), string(phase)).Inc()
	if tlsRelated {
		tlsRelatedTotal.Inc()
	}
	if suppressed {
		suppressedTotal.Inc()
	}
	if duration < 0 {
		duration = 0
	}
	reportDurationSeconds.Observe(duration.Seconds())
}
