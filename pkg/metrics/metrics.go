// Package metrics exposes merge counters through Prometheus. A nil *Metrics
// is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arthur-debert/twmerge/pkg/errors"
)

const namespace = "twmerge"

// Metrics groups the counters a Merger updates.
type Metrics struct {
	Merges      prometheus.Counter
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
	Tokens      prometheus.Counter
	Discarded   prometheus.Counter
}

// New creates the counters and registers them on reg. A nil reg leaves them
// unregistered.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Merges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merges_total",
			Help:      "Number of merge calls.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Merges answered from the result cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Merges that had to be resolved.",
		}),
		Tokens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_total",
			Help:      "Class tokens seen by the resolver.",
		}),
		Discarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_discarded_total",
			Help:      "Class tokens dropped because a later class overrode them.",
		}),
	}

	if reg != nil {
		for _, c := range m.collectors() {
			if err := reg.Register(c); err != nil {
				return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to register metrics")
			}
		}
	}
	return m, nil
}

// MustNew is like New but panics on a registration error.
func MustNew(reg prometheus.Registerer) *Metrics {
	m, err := New(reg)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Merges, m.CacheHits, m.CacheMisses, m.Tokens, m.Discarded}
}

// ObserveMerge records one merge call.
func (m *Metrics) ObserveMerge() {
	if m == nil {
		return
	}
	m.Merges.Inc()
}

// ObserveCache records a cache lookup.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.Inc()
		return
	}
	m.CacheMisses.Inc()
}

// ObserveTokens records the tokens of one resolution.
func (m *Metrics) ObserveTokens(seen, discarded int) {
	if m == nil {
		return
	}
	m.Tokens.Add(float64(seen))
	m.Discarded.Add(float64(discarded))
}
