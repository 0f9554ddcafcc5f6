// Package metrics exports keyset page requests as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nrfta/keyset-go"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

// Observer implements keyset.Observer.
type Observer struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	items    *prometheus.HistogramVec
}

var _ keyset.Observer = (*Observer)(nil)

// NewObserver creates an Observer and registers its collectors with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewObserver(reg prometheus.Registerer, namespace string) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &Observer{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "keyset",
				Name:      "page_requests_total",
				Help:      "Page requests by direction and result.",
			},
			[]string{"direction", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "keyset",
				Name:      "fetch_duration_seconds",
				Help:      "Time spent in the store per page request.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"direction"},
		),
		items: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "keyset",
				Name:      "page_items",
				Help:      "Items returned per page.",
				Buckets:   []float64{0, 1, 10, 25, 50, 100, 250, 500, 1000},
			},
			[]string{"direction"},
		),
	}

	for _, c := range []prometheus.Collector{o.requests, o.duration, o.items} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// PageFetched records a successful request.
func (o *Observer) PageFetched(meta keyset.Metadata) {
	dir := meta.Direction.String()
	o.requests.WithLabelValues(dir, resultOK).Inc()
	o.duration.WithLabelValues(dir).Observe(meta.QueryDuration.Seconds())

	returned := meta.ItemsExamined
	if meta.HasMore {
		returned--
	}
	o.items.WithLabelValues(dir).Observe(float64(returned))
}

// FetchFailed records a failed request.
func (o *Observer) FetchFailed(direction keyset.Direction, _ error) {
	o.requests.WithLabelValues(direction.String(), resultError).Inc()
}
