// Package metrics records click run statistics in a Prometheus registry and
// exports them in the node exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ReasonMovement = "movement"
	ReasonSignal   = "signal"
	ReasonError    = "error"
)

// Recorder owns a private registry so nothing leaks into the global one.
type Recorder struct {
	registry *prometheus.Registry
	clicks   prometheus.Counter
	stops    *prometheus.CounterVec
	duration prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		clicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "autoclick",
			Name:      "clicks_total",
			Help:      "Synthetic press/release pairs injected.",
		}),
		stops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "autoclick",
			Name:      "stops_total",
			Help:      "Click loop exits by reason.",
		}, []string{"reason"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "autoclick",
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run.",
		}),
	}
	r.registry.MustRegister(r.clicks, r.stops, r.duration)
	return r
}

// Registry returns the underlying Prometheus registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) AddClicks(n uint64) {
	r.clicks.Add(float64(n))
}

func (r *Recorder) Stopped(reason string) {
	r.stops.WithLabelValues(reason).Inc()
}

func (r *Recorder) ObserveDuration(d time.Duration) {
	r.duration.Set(d.Seconds())
}

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
