// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

import "github.com/prometheus/client_golang/prometheus"

// metrics bundles the optional Prometheus collectors for a Factory. They are
// created lazily by WithMetrics and are nil (and therefore never touched) for
// factories that do not register them, so the hot path pays no cost when
// metrics are disabled.
type metrics struct {
	nodes     prometheus.Gauge
	gcTotal   prometheus.Counter
	cacheHit  prometheus.Counter
	cacheMiss prometheus.Counter
}

// WithMetrics is a configuration option that registers a small set of
// Prometheus collectors (current node-table size, garbage-collection count,
// apply-cache hit/miss counters) with reg under the given name prefix. It is
// the domain-stack counterpart of the teacher library's debug-only Stats()
// report: where Stats() is a human-readable snapshot, WithMetrics exposes
// the same counters to a scrape endpoint.
func WithMetrics(reg prometheus.Registerer, namePrefix string) func(*configs) {
	return func(c *configs) {
		c.metrics = &metrics{
			nodes: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: namePrefix + "_nodes",
				Help: "Current number of allocated (non-sink) nodes in the store.",
			}),
			gcTotal: prometheus.NewCounter(prometheus.CounterOpts{
				Name: namePrefix + "_gc_total",
				Help: "Number of garbage collections performed on this factory.",
			}),
			cacheHit: prometheus.NewCounter(prometheus.CounterOpts{
				Name: namePrefix + "_apply_cache_hits_total",
				Help: "Number of And/Or memo-table hits.",
			}),
			cacheMiss: prometheus.NewCounter(prometheus.CounterOpts{
				Name: namePrefix + "_apply_cache_misses_total",
				Help: "Number of And/Or memo-table misses.",
			}),
		}
		if reg != nil {
			reg.MustRegister(c.metrics.nodes, c.metrics.gcTotal, c.metrics.cacheHit, c.metrics.cacheMiss)
		}
	}
}

func (m *metrics) recordNodes(n int) {
	if m == nil {
		return
	}
	m.nodes.Set(float64(n))
}

func (m *metrics) recordGC() {
	if m == nil {
		return
	}
	m.gcTotal.Inc()
}

func (m *metrics) recordCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHit.Inc()
		return
	}
	m.cacheMiss.Inc()
}
