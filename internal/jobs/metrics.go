package jobs

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type relayMetrics struct {
	published prometheus.Counter
	failures  prometheus.Counter
}

// newRelayMetrics registers the relay counters. A nil registerer keeps them
// unexported; a counter already registered by an earlier job is reused.
func newRelayMetrics(registerer prometheus.Registerer) (*relayMetrics, error) {
	published, err := registerCounter(registerer, prometheus.CounterOpts{
		Namespace: "ordering",
		Subsystem: "outbox",
		Name:      "messages_published_total",
		Help:      "Outbox messages handed to the message publisher.",
	})
	if err != nil {
		return nil, err
	}

	failures, err := registerCounter(registerer, prometheus.CounterOpts{
		Namespace: "ordering",
		Subsystem: "outbox",
		Name:      "relay_failures_total",
		Help:      "Relay runs that ended with an error.",
	})
	if err != nil {
		return nil, err
	}

	return &relayMetrics{published: published, failures: failures}, nil
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) (prometheus.Counter, error) {
	counter := prometheus.NewCounter(opts)
	if registerer == nil {
		return counter, nil
	}

	if err := registerer.Register(counter); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, err
	}

	return counter, nil
}
