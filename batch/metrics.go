package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics represents batch conversion metrics
type Metrics struct {
	// Rows counts converted rows
	Rows prometheus.Counter
	// NullRows counts rows converted to nil
	NullRows prometheus.Counter
	// Errors counts failed batches
	Errors prometheus.Counter
	// Duration is the latency of batch conversion
	Duration prometheus.Histogram
}

func (m *Metrics) observe(rows, nullRows int, err error, started time.Time) {
	if m == nil {
		return
	}
	m.Rows.Add(float64(rows))
	m.NullRows.Add(float64(nullRows))
	if err != nil {
		m.Errors.Inc()
	}
	m.Duration.Observe(time.Since(started).Seconds())
}

// NewMetrics creates metrics registered with supplied registerer, nil registerer skips registration
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		Rows: factory.NewCounter(prometheus.CounterOpts{
			Name: "schemaconv_rows_total",
			Help: "Total number of converted rows",
		}),
		NullRows: factory.NewCounter(prometheus.CounterOpts{
			Name: "schemaconv_null_rows_total",
			Help: "Total number of rows converted to null",
		}),
		Errors: factory.NewCounter(prometheus.CounterOpts{
			Name: "schemaconv_errors_total",
			Help: "Total number of failed batch conversions",
		}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "schemaconv_batch_seconds",
			Help:    "Batch conversion latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
