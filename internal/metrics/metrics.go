package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vancomm/maze-server/internal/eller"
)

type Metrics struct {
	Generated *prometheus.CounterVec
	Duration  prometheus.Histogram
	Cells     prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "maze_generated_total",
			Help: "Number of mazes generated, by orientation.",
		}, []string{"orientation"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "maze_generation_seconds",
			Help:    "Time spent generating a maze.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		Cells: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "maze_cells_generated_total",
			Help: "Number of maze cells generated.",
		}),
	}
	reg.MustRegister(m.Generated, m.Duration, m.Cells)
	return m
}

func (m *Metrics) Observe(p eller.Params, d time.Duration) {
	m.Generated.WithLabelValues(p.Orientation.String()).Inc()
	m.Duration.Observe(d.Seconds())
	m.Cells.Add(float64(p.Width * p.Height))
}
