/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package offline

import (
	"github.com/prometheus/client_golang/prometheus"
)

func newStoreMetrics(store string, reg prometheus.Registerer) *storeMetrics {
	labels := prometheus.Labels{"store": store}
	m := &storeMetrics{
		hits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   metricsNamespace,
				Subsystem:   metricsSubsystem,
				Name:        "cache_hits_total",
				Help:        "Number of document reads served by cache",
				ConstLabels: labels,
			},
			[]string{"cache"},
		),
		misses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   metricsNamespace,
				Subsystem:   metricsSubsystem,
				Name:        "cache_misses_total",
				Help:        "Number of document reads missed by cache",
				ConstLabels: labels,
			},
			[]string{"cache"},
		),
		txs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   metricsNamespace,
				Subsystem:   metricsSubsystem,
				Name:        "tx_total",
				Help:        "Number of applied transactions",
				ConstLabels: labels,
			},
			[]string{"kind"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.hits, m.misses, m.txs)
	}
	return m
}
