// Package metrics holds the Prometheus collectors of the bot
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "murahdahla"

// Metrics groups every collector. A nil *Metrics records nothing, so
// services can run without a registry in tests
type Metrics struct {
	registry *prometheus.Registry

	RacesStarted    *prometheus.CounterVec
	RacesStopped    prometheus.Counter
	Submissions     *prometheus.CounterVec
	SlotsCreated    *prometheus.CounterVec
	PublishDuration *prometheus.HistogramVec
	ActiveRaces     prometheus.Gauge
	CommandErrors   *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RacesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "races_started_total",
			Help:      "Total number of races started",
		}, []string{"game"}),
		RacesStopped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "races_stopped_total",
			Help:      "Total number of races archived",
		}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Submissions received, by game and outcome",
		}, []string{"game", "outcome"}),
		SlotsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "message_slots_created_total",
			Help:      "Chat messages posted to hold leaderboard pages",
		}, []string{"kind"}),
		PublishDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "publish_duration_seconds",
			Help:      "Time spent paginating text into message slots",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		ActiveRaces: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_races",
			Help:      "Races seen active by the last scheduled refresh",
		}),
		CommandErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_errors_total",
			Help:      "Failed chat commands, by command",
		}, []string{"command"}),
	}

	m.registry.MustRegister(
		m.RacesStarted,
		m.RacesStopped,
		m.Submissions,
		m.SlotsCreated,
		m.PublishDuration,
		m.ActiveRaces,
		m.CommandErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RaceStarted(game string) {
	if m == nil {
		return
	}
	m.RacesStarted.WithLabelValues(game).Inc()
}

func (m *Metrics) RaceStopped() {
	if m == nil {
		return
	}
	m.RacesStopped.Inc()
}

// SubmissionRecorded counts a submission outcome such as "accepted",
// "forfeit", "duplicate" or "rejected"
func (m *Metrics) SubmissionRecorded(game, outcome string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(game, outcome).Inc()
}

func (m *Metrics) SlotCreated(kind string) {
	if m == nil {
		return
	}
	m.SlotsCreated.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObservePublish(kind string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.PublishDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

func (m *Metrics) SetActiveRaces(n int) {
	if m == nil {
		return
	}
	m.ActiveRaces.Set(float64(n))
}

func (m *Metrics) CommandFailed(command string) {
	if m == nil {
		return
	}
	m.CommandErrors.WithLabelValues(command).Inc()
}
