package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"florbot/internal/structures"
)

type MetricsProviderInterface interface {
	IncCommandsTotal(command string, ok bool)
	ObserveCommandDuration(command string, duration time.Duration)
	ObservePersistenceDuration(duration time.Duration)
	IncLidResolutions(outcome string)
	SetUsersTotal(count int)
	SetListingsTotal(count int)
}

type MetricsProvider struct {
	commandsTotal       *prometheus.CounterVec
	commandDuration     *prometheus.HistogramVec
	persistenceDuration prometheus.Histogram
	lidResolutions      *prometheus.CounterVec
	usersTotal          prometheus.Gauge
	listingsTotal       prometheus.Gauge
}

func (m *MetricsProvider) IncCommandsTotal(command string, ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	m.commandsTotal.WithLabelValues(command, status).Inc()
}

func (m *MetricsProvider) ObserveCommandDuration(command string, duration time.Duration) {
	m.commandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncLidResolutions(outcome string) {
	m.lidResolutions.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) SetUsersTotal(count int) {
	m.usersTotal.Set(float64(count))
}

func (m *MetricsProvider) SetListingsTotal(count int) {
	m.listingsTotal.Set(float64(count))
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		commandsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "florbot_commands_total",
			Help: "Total number of executed commands",
		}, []string{"command", "status"}),

		commandDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "florbot_command_duration_seconds",
			Help:    "Command execution duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "florbot_persistence_duration_seconds",
			Help:    "Duration of economy persistence operations in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		lidResolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "florbot_lid_resolutions_total",
			Help: "LID to phone-number resolution attempts by outcome",
		}, []string{"outcome"}),

		usersTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "florbot_users_total",
			Help: "Total number of user records in the economy document",
		}),

		listingsTotal: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "florbot_market_listings_total",
			Help: "Number of active market listings",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncCommandsTotal(_ string, _ bool)                 {}
func (n *noopMetrics) ObserveCommandDuration(_ string, _ time.Duration)  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)        {}
func (n *noopMetrics) IncLidResolutions(_ string)                        {}
func (n *noopMetrics) SetUsersTotal(_ int)                               {}
func (n *noopMetrics) SetListingsTotal(_ int)                            {}
