package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	languageLabel = "language"
	verdictLabel  = "verdict"
)

// Collector keeps all judger metrics on its own registry so that several
// collectors may coexist in one process (used by tests).
type Collector struct {
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	SubmissionsCount   *prometheus.CounterVec
	VerdictsCount      *prometheus.CounterVec
	LoginsCount        prometheus.Counter
	TrackerPasses      prometheus.Counter
	FetchFailures      prometheus.Counter
	TrackedSubmissions prometheus.Gauge
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	c := &Collector{
		Registerer: registry,
		Gatherer:   registry,
	}

	c.SubmissionsCount = c.createCounterVec(
		"submissions_count",
		"Number of solutions submitted to the remote judge",
		[]string{languageLabel},
	)

	c.VerdictsCount = c.createCounterVec(
		"verdicts_count",
		"Number of terminal verdicts delivered to callbacks",
		[]string{verdictLabel},
	)

	c.LoginsCount = c.createCounter(
		"logins_count",
		"Number of successful logins to the remote judge",
	)

	c.TrackerPasses = c.createCounter(
		"tracker_passes_count",
		"Number of completed tracker polling passes",
	)

	c.FetchFailures = c.createCounter(
		"fetch_failures_count",
		"Number of submission status fetches that failed",
	)

	c.TrackedSubmissions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "aj",
		Subsystem: "tracker",
		Name:      "tracked_submissions",
		Help:      "Number of submissions currently polled",
	})
	c.Registerer.MustRegister(c.TrackedSubmissions)

	return c
}

func (c *Collector) createCounter(name string, help string) prometheus.Counter {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "aj",
		Subsystem: "judger",
		Name:      name,
		Help:      help,
	})
	c.Registerer.MustRegister(counter)
	return counter
}

func (c *Collector) createCounterVec(name string, help string, labelNames []string) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aj",
			Subsystem: "judger",
			Name:      name,
			Help:      help,
		},
		labelNames,
	)
	c.Registerer.MustRegister(counter)
	return counter
}
