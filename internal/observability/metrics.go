package observability

import (
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danmuck/fieldbuf/internal/safebuf"
)

var (
	registerOnce sync.Once

	fieldChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fieldbuf",
			Subsystem: "lint",
			Name:      "checks_total",
			Help:      "Field checks performed.",
		},
		[]string{"result"},
	)
	fieldRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fieldbuf",
			Subsystem: "lint",
			Name:      "rejections_total",
			Help:      "Field checks rejected by the buffer contract.",
		},
		[]string{"field", "kind"},
	)
	manifestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fieldbuf",
			Subsystem: "lint",
			Name:      "manifest_duration_seconds",
			Help:      "Whole-manifest lint duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(fieldChecks, fieldRejections, manifestDuration)
	})
}

func RecordCheck(ok bool) {
	RegisterMetrics()
	result := "ok"
	if !ok {
		result = "rejected"
	}
	fieldChecks.WithLabelValues(result).Inc()
}

func RecordRejection(field string, err error) {
	RegisterMetrics()
	fieldRejections.WithLabelValues(field, RejectionKind(err)).Inc()
}

func RecordManifest(rejected int, duration time.Duration) {
	RegisterMetrics()
	outcome := "clean"
	if rejected > 0 {
		outcome = "rejected"
	}
	manifestDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RejectionKind maps an error to its buffer taxonomy label. Errors from
// outside the taxonomy report "other".
func RejectionKind(err error) string {
	var invalid safebuf.InvalidCharacterError
	var overflow safebuf.OverflowError
	var bounds safebuf.IndexOutOfBoundsError
	switch {
	case errors.As(err, &invalid):
		return "invalid_character"
	case errors.As(err, &overflow):
		return "overflow"
	case errors.As(err, &bounds):
		return "index_out_of_bounds"
	default:
		return "other"
	}
}
