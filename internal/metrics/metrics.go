// Package metrics collects and exposes Prometheus metrics for the
// gym-management API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector counts the domain events worth watching in operation.
type Collector struct {
	logins         *prometheus.CounterVec
	signups        prometheus.Counter
	checkIns       prometheus.Counter
	checkOuts      prometheus.Counter
	guardDecisions *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with the
// given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gymapp_logins_total",
			Help: "Successful logins by derived role.",
		}, []string{"role"}),
		signups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gymapp_signups_total",
			Help: "Successful signups.",
		}),
		checkIns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gymapp_attendance_checkins_total",
			Help: "Member check-ins recorded in the attendance ledger.",
		}),
		checkOuts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gymapp_attendance_checkouts_total",
			Help: "Member check-outs recorded in the attendance ledger.",
		}),
		guardDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gymapp_guard_decisions_total",
			Help: "Route guard decisions by action.",
		}, []string{"action"}),
	}

	reg.MustRegister(
		c.logins,
		c.signups,
		c.checkIns,
		c.checkOuts,
		c.guardDecisions,
	)

	return c
}

func (c *Collector) RecordLogin(role string) {
	c.logins.WithLabelValues(role).Inc()
}

func (c *Collector) RecordSignup() {
	c.signups.Inc()
}

func (c *Collector) RecordCheckIn() {
	c.checkIns.Inc()
}

func (c *Collector) RecordCheckOut() {
	c.checkOuts.Inc()
}

func (c *Collector) RecordGuardDecision(action string) {
	c.guardDecisions.WithLabelValues(action).Inc()
}

// Handler returns the HTTP handler Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
