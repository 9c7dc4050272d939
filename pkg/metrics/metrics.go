// Package metrics exposes prometheus instrumentation for pipeline runs.
// Registration happens on the default registry; embedders that serve
// /metrics get these for free.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// 📈 RunsTotal counts pipeline runs by final quality disposition
	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rephrase_pipeline_runs_total",
			Help: "Total number of pipeline runs",
		},
		[]string{"passed"},
	)

	// 📈 StageResults counts per-stage dispositions
	StageResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rephrase_stage_results_total",
			Help: "Stage outcomes by disposition (applied, declined, rolled_back, skipped, failed)",
		},
		[]string{"stage", "disposition"},
	)

	// ⏱️ StageDuration tracks stage latency
	StageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "rephrase_stage_duration_seconds",
			Help: "Duration of transformation stages",
		},
		[]string{"stage"},
	)
)

func init() {
	prometheus.MustRegister(RunsTotal, StageResults, StageDuration)
}
