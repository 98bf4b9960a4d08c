package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// serverMetrics holds the Prometheus metrics for a preview server. Each
// server carries its own registry so that tests and embedders can run
// several servers side by side without duplicate registration.
type serverMetrics struct {
	pagesRendered    *prometheus.CounterVec
	renderDuration   *prometheus.HistogramVec
	renderBytes      prometheus.Histogram
	reloadBroadcasts prometheus.Counter
}

// newServerMetrics registers the preview metrics with the given registry.
func newServerMetrics(registry prometheus.Registerer) *serverMetrics {
	factory := promauto.With(registry)

	return &serverMetrics{
		pagesRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blizzard",
			Subsystem: "preview",
			Name:      "pages_rendered_total",
			Help:      "Total number of pages rendered, by path and status",
		}, []string{"path", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "blizzard",
			Subsystem: "preview",
			Name:      "render_duration_seconds",
			Help:      "Page render duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "blizzard",
			Subsystem: "preview",
			Name:      "render_bytes",
			Help:      "Rendered page size in bytes",
			Buckets:   []float64{1024, 10240, 102400, 1048576}, // 1KB to 1MB
		}),

		reloadBroadcasts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "blizzard",
			Subsystem: "preview",
			Name:      "reload_broadcasts_total",
			Help:      "Total number of live-reload broadcasts sent",
		}),
	}
}
