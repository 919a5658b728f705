package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	LogsQueried  Counter
	CacheLookups Counter
	PanelErrors  Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func New() *Counters {
	return &Counters{
		LogsQueried: NewPrometheusCounter(
			"logs_queried_total",
			"Log queries executed against the log store",
			[]string{"operation"},
		),
		CacheLookups: NewPrometheusCounter(
			"cache_lookups_total",
			"Cache lookups by namespace and outcome",
			[]string{"namespace", "outcome"},
		),
		PanelErrors: NewPrometheusCounter(
			"panel_errors_total",
			"Panel requests that failed, by route and kind",
			[]string{"route", "kind"},
		),
	}
}

// NewTestCounters registers against a private registry so tests can
// construct services without colliding on the default one.
func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	logsQueried := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logs_queried_total",
			Help: "Log queries executed against the log store",
		}, []string{"operation"}),
	}

	cacheLookups := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Cache lookups by namespace and outcome",
		}, []string{"namespace", "outcome"}),
	}

	panelErrors := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "panel_errors_total",
			Help: "Panel requests that failed, by route and kind",
		}, []string{"route", "kind"}),
	}

	reg.MustRegister(logsQueried.counter)
	reg.MustRegister(cacheLookups.counter)
	reg.MustRegister(panelErrors.counter)

	return &Counters{
		LogsQueried:  logsQueried,
		CacheLookups: cacheLookups,
		PanelErrors:  panelErrors,
	}
}
