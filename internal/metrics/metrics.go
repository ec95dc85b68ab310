// Package metrics holds the Prometheus collectors of the mapping pipeline
// and the onboarding message hub.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConfigurationsMapped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paywallui_configurations_mapped_total",
			Help: "Total number of view configurations mapped, by outcome",
		},
		[]string{"outcome"},
	)

	MappingFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paywallui_mapping_failures_total",
			Help: "Total number of view configuration mapping failures by issue code",
		},
		[]string{"code"},
	)

	MappingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "paywallui_mapping_duration_seconds",
			Help:    "Duration of view configuration mapping in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
	)

	ElementsMapped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "paywallui_elements_mapped_total",
			Help: "Total number of element descriptors produced",
		},
	)

	OnboardingMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paywallui_onboarding_messages_total",
			Help: "Total number of onboarding messages processed, by result kind",
		},
		[]string{"kind"},
	)

	BroadcastDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paywallui_broadcast_dropped_total",
			Help: "Items replaced in a subscriber buffer before being received",
		},
		[]string{"channel"},
	)
)

// Message kinds for OnboardingMessages.
const (
	KindAction    = "action"
	KindAnalytics = "analytics"
	KindLoaded    = "loaded"
	KindError     = "error"
)

// Outcomes for ConfigurationsMapped.
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)
