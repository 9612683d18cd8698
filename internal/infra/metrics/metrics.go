package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jose-valero/nick-rotator-bot/internal/domain"
)

const namespace = "nickrotator"

// Rotations registra cada rotación en un registry propio (no el global).
type Rotations struct {
	registry   *prometheus.Registry
	total      *prometheus.CounterVec
	duration   prometheus.Histogram
	nextChange prometheus.Gauge
}

func New() *Rotations {
	m := &Rotations{
		registry: prometheus.NewRegistry(),
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rotations_total",
			Help:      "Nickname rotations by outcome status.",
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rotation_duration_seconds",
			Help:      "Wall time of a rotation including platform calls.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}),
		nextChange: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "next_change_timestamp_seconds",
			Help:      "Unix time of the next scheduled nickname change (0 when unknown).",
		}),
	}
	m.registry.MustRegister(m.total, m.duration, m.nextChange)
	return m
}

// ObserveRotation implementa service.RotationRecorder.
func (m *Rotations) ObserveRotation(o domain.Outcome) {
	if m == nil {
		return
	}
	m.total.WithLabelValues(string(o.Status)).Inc()
	m.duration.Observe(o.Duration.Seconds())
	if !o.NextChange.IsZero() {
		m.nextChange.Set(float64(o.NextChange.Unix()))
	}
}

func (m *Rotations) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Rotations) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
