package keeper

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

const (
	// MetricsSubsystem is a subsystem shared by all metrics exposed by this
	// package.
	MetricsSubsystem = "feegov"

	poolLabel = "pool"
)

// Metrics contains metrics exposed by the fee governance keeper.
// Gauges are labelled with the pool id.
type Metrics struct {
	// Voting power of the pool.
	VotingPower metrics.Gauge
	// Quorum fixed at the last refresh.
	Quorum metrics.Gauge
	// Number of active proposals.
	Proposals metrics.Gauge

	// Proposals accepted.
	ProposalsSubmitted metrics.Counter
	// Votes accepted.
	Votes metrics.Counter
	// Votes that left a proposal winning.
	QuorumReached metrics.Counter
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
// Optionally, labels can be provided along with their values ("foo",
// "fooValue").
func PrometheusMetrics(namespace string, labelsAndValues ...string) *Metrics {
	labels := []string{}
	for i := 0; i < len(labelsAndValues); i += 2 {
		labels = append(labels, labelsAndValues[i])
	}
	poolLabels := append(append([]string{}, labels...), poolLabel)
	return &Metrics{
		VotingPower: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "voting_power",
			Help:      "Voting power of the pool.",
		}, poolLabels).With(labelsAndValues...),
		Quorum: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "quorum",
			Help:      "Quorum of the pool fixed at the last refresh.",
		}, poolLabels).With(labelsAndValues...),
		Proposals: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "proposals",
			Help:      "Number of active proposals of the pool.",
		}, poolLabels).With(labelsAndValues...),
		ProposalsSubmitted: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "proposals_submitted",
			Help:      "Number of accepted proposals.",
		}, labels).With(labelsAndValues...),
		Votes: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "votes",
			Help:      "Number of accepted votes.",
		}, labels).With(labelsAndValues...),
		QuorumReached: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: MetricsSubsystem,
			Name:      "quorum_reached",
			Help:      "Number of votes that left a proposal above quorum.",
		}, labels).With(labelsAndValues...),
	}
}

// NopMetrics returns no-op Metrics.
func NopMetrics() *Metrics {
	return &Metrics{
		VotingPower:        discard.NewGauge(),
		Quorum:             discard.NewGauge(),
		Proposals:          discard.NewGauge(),
		ProposalsSubmitted: discard.NewCounter(),
		Votes:              discard.NewCounter(),
		QuorumReached:      discard.NewCounter(),
	}
}
