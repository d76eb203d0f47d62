package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricNameHTTPRequestDuration,
			Help: HelpTextHTTPRequestDuration,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Game Metrics
var (
	ClicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClicksTotal,
			Help: HelpTextClicksTotal,
		},
	)

	StudsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStudsEarned,
			Help: HelpTextStudsEarned,
		},
	)

	StudsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStudsSpent,
			Help: HelpTextStudsSpent,
		},
	)

	UpgradesBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradesBought,
			Help: HelpTextUpgradesBought,
		},
		[]string{LabelUpgrade},
	)

	RebirthsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRebirthsTotal,
			Help: HelpTextRebirthsTotal,
		},
	)

	HatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHatchesTotal,
			Help: HelpTextHatchesTotal,
		},
		[]string{LabelTier},
	)

	HatchFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHatchFailures,
			Help: HelpTextHatchFailures,
		},
	)

	EventsTriggered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsTriggered,
			Help: HelpTextEventsTriggered,
		},
		[]string{LabelType},
	)

	EventsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameEventsActive,
			Help: HelpTextEventsActive,
		},
	)

	AchievementsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsClaims,
			Help: HelpTextAchievementsClaims,
		},
	)
)
