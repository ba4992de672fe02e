package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/gaze/content"
	"github.com/lixenwraith/gaze/engine"
	"github.com/lixenwraith/gaze/physics"
)

// Collector holds the session's Prometheus metrics and is an engine.Listener
type Collector struct {
	registry *prometheus.Registry

	Frames        prometheus.Counter
	FramesSkipped prometheus.Counter
	WallBounces   prometheus.Counter
	Overlaps      prometheus.Counter
	Impulses      prometheus.Counter
	Opened        *prometheus.CounterVec
	Published     *prometheus.CounterVec
	StepDuration  prometheus.Histogram
	Nodes         prometheus.Gauge
	Edges         prometheus.Gauge
}

// NewCollector creates a collector with its own registry
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Total number of completed frames",
		}),
		FramesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_skipped_total",
			Help:      "Total number of frames dropped after an anomaly",
		}),
		WallBounces: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wall_bounces_total",
			Help:      "Total number of per-axis wall reflections",
		}),
		Overlaps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "overlaps_total",
			Help:      "Total number of node pairs that needed positional correction",
		}),
		Impulses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "impulses_total",
			Help:      "Total number of elastic impulses applied",
		}),
		Opened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "threads_opened_total",
			Help:      "Total number of threads opened by click",
		}, []string{"type"}),
		Published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_published_total",
			Help:      "Total number of nodes published",
		}, []string{"type"}),
		StepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_duration_seconds",
			Help:      "Time spent stepping the field and building edges",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes",
			Help:      "Current number of nodes",
		}),
		Edges: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "edges",
			Help:      "Current number of proximity edges",
		}),
	}

	registry.MustRegister(
		c.Frames,
		c.FramesSkipped,
		c.WallBounces,
		c.Overlaps,
		c.Impulses,
		c.Opened,
		c.Published,
		c.StepDuration,
		c.Nodes,
		c.Edges,
	)
	return c
}

// Registry returns the collector's registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// OnOpen counts an opened thread
func (c *Collector) OnOpen(item content.Item) {
	c.Opened.WithLabelValues(string(item.Type)).Inc()
}

// OnPublish counts a published node
func (c *Collector) OnPublish(_ physics.Node, item content.Item) {
	c.Published.WithLabelValues(string(item.Type)).Inc()
}

// OnFrame records one completed frame
func (c *Collector) OnFrame(stats engine.FrameStats) {
	c.Frames.Inc()
	c.WallBounces.Add(float64(stats.Step.WallBounces))
	c.Overlaps.Add(float64(stats.Step.Overlaps))
	c.Impulses.Add(float64(stats.Step.Impulses))
	c.StepDuration.Observe(stats.Duration.Seconds())
	c.Nodes.Set(float64(stats.Nodes))
	c.Edges.Set(float64(stats.Edges))
}

// OnSkip counts a dropped frame
func (c *Collector) OnSkip(uint64, any) {
	c.FramesSkipped.Inc()
}
