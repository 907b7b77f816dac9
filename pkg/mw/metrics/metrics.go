package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ib-77/nextchain/pkg/mw"
	"github.com/ib-77/nextchain/pkg/mw/core"
)

// Run outcome label values.
const (
	OutcomeSuccess   = "success"
	OutcomeTolerated = "tolerated"
	OutcomeFailure   = "failure"
	OutcomeTimeout   = "timeout"
	OutcomeCancel    = "cancel"
)

// Step failure kind label values.
const (
	KindHandler     = "handler"
	KindPanic       = "panic"
	KindStepTimeout = "step_timeout"
	KindAborted     = "aborted"
)

// Collector records chain runs as prometheus metrics. It implements both
// chain.Observer and prometheus.Collector:
//
//	col := metrics.NewCollector("registration")
//	prometheus.MustRegister(col)
//	c.Observe(col)
type Collector struct {
	runs         *prometheus.CounterVec
	runDuration  prometheus.Histogram
	stepDuration prometheus.Histogram
	stepFailures *prometheus.CounterVec
	tolerated    *prometheus.CounterVec
	active       prometheus.Gauge
}

// NewCollector returns a collector whose metrics carry the given const
// "chain" label, so several chains can share a registry.
func NewCollector(chainName string) *Collector {
	labels := prometheus.Labels{"chain": chainName}

	c := &Collector{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "nextchain_runs_total",
				Help:        "Total number of chain runs by outcome.",
				ConstLabels: labels,
			},
			[]string{"outcome"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:        "nextchain_run_seconds",
				Help:        "Duration of a whole chain run, in seconds.",
				ConstLabels: labels,
				Buckets:     prometheus.DefBuckets,
			},
		),
		stepDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:        "nextchain_step_seconds",
				Help:        "Duration from step start to continuation or timeout, in seconds.",
				ConstLabels: labels,
				Buckets:     prometheus.DefBuckets,
			},
		),
		stepFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "nextchain_step_failures_total",
				Help:        "Total number of failed steps by kind.",
				ConstLabels: labels,
			},
			[]string{"kind"},
		),
		tolerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "nextchain_tolerated_errors_total",
				Help:        "Total number of step errors carried by tolerated runs, by kind.",
				ConstLabels: labels,
			},
			[]string{"kind"},
		),
		active: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "nextchain_active_runs",
				Help:        "Number of chain runs in progress.",
				ConstLabels: labels,
			},
		),
	}

	// Pre-initialize label combinations so they are exported with value 0.
	for _, o := range []string{OutcomeSuccess, OutcomeTolerated, OutcomeFailure, OutcomeTimeout, OutcomeCancel} {
		c.runs.WithLabelValues(o)
	}
	for _, k := range []string{KindHandler, KindPanic, KindStepTimeout, KindAborted} {
		c.stepFailures.WithLabelValues(k)
		c.tolerated.WithLabelValues(k)
	}

	return c
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.runs.Describe(ch)
	c.runDuration.Describe(ch)
	c.stepDuration.Describe(ch)
	c.stepFailures.Describe(ch)
	c.tolerated.Describe(ch)
	c.active.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.runs.Collect(ch)
	c.runDuration.Collect(ch)
	c.stepDuration.Collect(ch)
	c.stepFailures.Collect(ch)
	c.tolerated.Collect(ch)
	c.active.Collect(ch)
}

func (c *Collector) RunStarted(_ context.Context, _ uuid.UUID, _ int) {
	c.active.Inc()
}

func (c *Collector) StepStarted(_ context.Context, _ core.Step) {}

func (c *Collector) StepFinished(_ context.Context, _ core.Step, elapsed time.Duration, err error) {
	c.stepDuration.Observe(elapsed.Seconds())
	if err != nil {
		c.stepFailures.WithLabelValues(FailureKind(err)).Inc()
	}
}

func (c *Collector) RunFinished(_ context.Context, res mw.Outcome, elapsed time.Duration) {
	c.active.Dec()
	c.runDuration.Observe(elapsed.Seconds())
	c.runs.WithLabelValues(OutcomeOf(res)).Inc()
	if res.IsTolerated() {
		for _, err := range mw.Unjoin(res.Err()) {
			c.tolerated.WithLabelValues(FailureKind(err)).Inc()
		}
	}
}

// OutcomeOf maps a run result to its outcome label.
func OutcomeOf(res mw.Outcome) string {
	switch {
	case res.IsSuccess():
		return OutcomeSuccess
	case res.IsTolerated():
		return OutcomeTolerated
	case res.IsCancel():
		return OutcomeCancel
	case errors.Is(res.Err(), mw.ErrChainTimeout):
		return OutcomeTimeout
	default:
		return OutcomeFailure
	}
}

// FailureKind maps a step error to its kind label.
func FailureKind(err error) string {
	switch {
	case errors.Is(err, mw.ErrStepTimeout):
		return KindStepTimeout
	case errors.Is(err, mw.ErrPanic):
		return KindPanic
	case errors.Is(err, mw.ErrChainTimeout), mw.IsCancellationError(err):
		return KindAborted
	default:
		return KindHandler
	}
}
