// Package metrics holds the process Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlansGenerated counts generated sessions by discipline and whether the
	// recovery override fired.
	PlansGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hybridcoach_plans_generated_total",
		Help: "Generated training sessions by discipline and recovery override",
	}, []string{"discipline", "recovery"})

	// SafetyRuleHits counts check-ins by the rule that decided them.
	SafetyRuleHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hybridcoach_safety_rule_hits_total",
		Help: "Check-in evaluations by deciding rule",
	}, []string{"rule"})

	// SessionsLogged counts logged sessions by impact type.
	SessionsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hybridcoach_sessions_logged_total",
		Help: "Logged training sessions by impact type",
	}, []string{"impact_type"})

	// CoachReplies counts chat replies by source (generated or fallback).
	CoachReplies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hybridcoach_coach_replies_total",
		Help: "Coach chat replies by source",
	}, []string{"source"})

	// HTTPRequestDuration tracks API latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hybridcoach_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
	}, []string{"method", "route", "status"})

	// SchedulerRuns counts background job runs by job and result.
	SchedulerRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hybridcoach_scheduler_runs_total",
		Help: "Background job runs by job and result",
	}, []string{"job", "result"})
)
