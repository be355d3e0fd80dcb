// Package metrics owns the prometheus registry and the collectors the API and engine report into
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "almanac"

// MaxStagePositions bounds the position label; later stages share the "overflow" series
const MaxStagePositions = 16

// Metrics is a private registry plus typed collectors. The zero value is not usable; call New
type Metrics struct {
	reg *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	stageApplied    *prometheus.CounterVec
	stageTranslated *prometheus.CounterVec
	stageIntervals  *prometheus.HistogramVec

	runs        *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
}

// New registers every collector on a fresh registry. withRuntime adds go and process collectors
func New(withRuntime bool) *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "HTTP requests by route pattern and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		stageApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "engine", Name: "stage_applied_total",
			Help: "Stage applications by pipeline position.",
		}, []string{"position"}),
		stageTranslated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "engine", Name: "stage_translated_total",
			Help: "Interval pieces moved by a rule, by pipeline position.",
		}, []string{"position"}),
		stageIntervals: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "engine", Name: "stage_intervals",
			Help:    "Range set size entering (in) and leaving (out) a stage.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"position", "side"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "engine", Name: "runs_total",
			Help: "Engine runs by kind, mode and outcome.",
		}, []string{"kind", "mode", "outcome"}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "engine", Name: "run_duration_seconds",
			Help:    "Wall time of a full engine run.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"kind"}),
	}
	m.reg.MustRegister(m.httpRequests, m.httpDuration, m.stageApplied, m.stageTranslated, m.stageIntervals, m.runs, m.runDuration)
	if withRuntime {
		m.reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	return m
}

// Registry exposes the underlying registry for tests and extra collectors
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveHTTP records one finished request. route is the matched pattern, never the raw path
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveStage records one stage application at pipeline position index.
// Stage names are caller supplied and stay out of labels
func (m *Metrics) ObserveStage(index, in, out, translated int) {
	pos := StagePosition(index)
	m.stageApplied.WithLabelValues(pos).Inc()
	m.stageTranslated.WithLabelValues(pos).Add(float64(translated))
	m.stageIntervals.WithLabelValues(pos, "in").Observe(float64(in))
	m.stageIntervals.WithLabelValues(pos, "out").Observe(float64(out))
}

// StagePosition renders index as a label value from a fixed set
func StagePosition(index int) string {
	if index < 0 || index >= MaxStagePositions {
		return "overflow"
	}
	return strconv.Itoa(index)
}

// ObserveRun records a finished run; err decides the outcome label
func (m *Metrics) ObserveRun(kind, mode string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.runs.WithLabelValues(kind, mode, outcome).Inc()
	m.runDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}
