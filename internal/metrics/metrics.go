package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/patrik-rangel/hotel-data-generator/internal/domain/entities"
)

// Metrics agrupa os coletores do gerador e da API.
type Metrics struct {
	Registry *prometheus.Registry

	generationDuration prometheus.Histogram
	generatedRecords   *prometheus.GaugeVec
	snapshotsTotal     prometheus.Counter
	httpRequests       *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		generationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hoteldata",
			Name:      "snapshot_generation_seconds",
			Help:      "Time spent generating a full snapshot.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}),
		generatedRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "hoteldata",
			Name:      "snapshot_records",
			Help:      "Records in the current snapshot per collection.",
		}, []string{"collection"}),
		snapshotsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hoteldata",
			Name:      "snapshots_generated_total",
			Help:      "Snapshots generated since start.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hoteldata",
			Name:      "http_requests_total",
			Help:      "API requests by route pattern and status.",
		}, []string{"route", "status"}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		m.generationDuration,
		m.generatedRecords,
		m.snapshotsTotal,
		m.httpRequests,
	)
	return m
}

func (m *Metrics) ObserveSnapshot(manifest entities.Manifest, took time.Duration) {
	m.generationDuration.Observe(took.Seconds())
	m.snapshotsTotal.Inc()
	for collection, n := range manifest.Counts {
		m.generatedRecords.WithLabelValues(string(collection)).Set(float64(n))
	}
}

func (m *Metrics) ObserveRequest(route string, status int) {
	m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// Handler expõe o registry no formato do Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
