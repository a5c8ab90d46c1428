package manager

import "github.com/prometheus/client_golang/prometheus"

// MetricsPublisher counts seating events and tracks pool and queue sizes.
type MetricsPublisher struct {
	events   *prometheus.CounterVec
	seatSize *prometheus.HistogramVec
	free     prometheus.GaugeFunc
	queued   prometheus.GaugeFunc
}

// NewMetricsPublisher builds collectors for m and registers them with reg.
// Gauges read the manager on scrape, so they take its lock briefly.
func NewMetricsPublisher(reg prometheus.Registerer, m *Manager) (*MetricsPublisher, error) {
	p := &MetricsPublisher{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "seatd",
				Subsystem: "manager",
				Name:      "events_total",
				Help:      "Total seating events by name",
			},
			[]string{"event"},
		),
		seatSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "seatd",
				Subsystem: "manager",
				Name:      "group_size",
				Help:      "Size of arriving groups by outcome",
				Buckets:   prometheus.LinearBuckets(1, 1, 12),
			},
			[]string{"outcome"},
		),
		free: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "seatd",
				Subsystem: "manager",
				Name:      "free_tables",
				Help:      "Tables currently in the free pool",
			},
			func() float64 { return float64(len(m.GetTables())) },
		),
		queued: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: "seatd",
				Subsystem: "manager",
				Name:      "queue_length",
				Help:      "Groups currently waiting",
			},
			func() float64 { return float64(len(m.GetQueue())) },
		),
	}
	for _, c := range []prometheus.Collector{p.events, p.seatSize, p.free, p.queued} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *MetricsPublisher) Publish(e Event) {
	p.events.WithLabelValues(e.Name).Inc()
	switch e.Name {
	case EventGroupSeated:
		p.seatSize.WithLabelValues("seated").Observe(float64(e.Size))
	case EventGroupQueued:
		p.seatSize.WithLabelValues("queued").Observe(float64(e.Size))
	}
}
