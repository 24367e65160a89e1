// Package metrics holds the prometheus collectors of the pickup service.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Transition labels recorded by PickupMetrics.IncTransition.
const (
	TransitionCreated   = "created"
	TransitionCancelled = "cancelled"
	TransitionAccepted  = "accepted"
	TransitionDeleted   = "deleted"
)

// PickupMetrics records lifecycle transitions and the current status mix.
// A nil *PickupMetrics is valid and records nothing.
type PickupMetrics struct {
	transitions *prometheus.CounterVec
	byStatus    *prometheus.GaugeVec
}

// NewPickupMetrics registers the collectors on reg. A nil registerer yields
// a recorder that drops observations.
func NewPickupMetrics(reg prometheus.Registerer) *PickupMetrics {
	if reg == nil {
		return &PickupMetrics{}
	}
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pickup_transitions_total",
		Help: "Successful pickup lifecycle operations.",
	}, []string{"transition"})
	byStatus := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pickups_by_status",
		Help: "Number of stored pickups per status.",
	}, []string{"status"})
	reg.MustRegister(transitions, byStatus)
	return &PickupMetrics{
		transitions: transitions,
		byStatus:    byStatus,
	}
}

func (m *PickupMetrics) IncTransition(transition string) {
	if m == nil || m.transitions == nil {
		return
	}
	m.transitions.WithLabelValues(normalizeLabel(transition)).Inc()
}

// SetStatusCounts replaces the gauge values with counts. Statuses missing
// from counts are reset to zero so deleted rows stop being reported.
func (m *PickupMetrics) SetStatusCounts(counts map[string]int64) {
	if m == nil || m.byStatus == nil {
		return
	}
	m.byStatus.Reset()
	for status, n := range counts {
		m.byStatus.WithLabelValues(normalizeLabel(status)).Set(float64(n))
	}
}

func normalizeLabel(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return "unknown"
	}
	return v
}
