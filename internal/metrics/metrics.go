// Package metrics collects and exposes Prometheus metrics for the stores and the RPC layer.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Load outcomes.
const (
	LoadOK      = "ok"
	LoadEmpty   = "empty"
	LoadFailed  = "failed"
	LoadCorrupt = "corrupt"
)

// Recorder is what the stores and the RPC interceptor report to.
type Recorder interface {
	RecordMutation(store, op string)
	RecordLoad(key, outcome string)
	RecordWrite(key string, err error, d time.Duration)
	RecordRPC(procedure, code string, d time.Duration)
}

// Nop discards everything. It is the default for stores built without metrics.
type Nop struct{}

func (Nop) RecordMutation(string, string) {}
func (Nop) RecordLoad(string, string) {}
func (Nop) RecordWrite(string, error, time.Duration) {}
func (Nop) RecordRPC(string, string, time.Duration) {}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	mutations    *prometheus.CounterVec
	loads        *prometheus.CounterVec
	writes       *prometheus.CounterVec
	writeLatency *prometheus.HistogramVec
	rpcs         *prometheus.CounterVec
	rpcLatency   *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "masterbook_store_mutations_total",
			Help: "Store mutations by store and operation.",
		}, []string{"store", "op"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "masterbook_store_loads_total",
			Help: "Snapshot loads at startup by key and outcome.",
		}, []string{"key", "outcome"}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "masterbook_persist_writes_total",
			Help: "Snapshot writes by key and result.",
		}, []string{"key", "result"}),
		writeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "masterbook_persist_write_seconds",
			Help:    "Snapshot write latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"key"}),
		rpcs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "masterbook_rpc_requests_total",
			Help: "RPC calls by procedure and status code.",
		}, []string{"procedure", "code"}),
		rpcLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "masterbook_rpc_duration_seconds",
			Help:    "RPC latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"procedure"}),
	}

	reg.MustRegister(
		c.mutations,
		c.loads,
		c.writes,
		c.writeLatency,
		c.rpcs,
		c.rpcLatency,
	)

	return c
}

// RecordMutation counts one store mutation.
func (c *Collector) RecordMutation(store, op string) {
	c.mutations.WithLabelValues(store, op).Inc()
}

// RecordLoad counts one snapshot load.
func (c *Collector) RecordLoad(key, outcome string) {
	c.loads.WithLabelValues(key, outcome).Inc()
}

// RecordWrite counts one snapshot write and observes its latency.
func (c *Collector) RecordWrite(key string, err error, d time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.writes.WithLabelValues(key, result).Inc()
	c.writeLatency.WithLabelValues(key).Observe(d.Seconds())
}

// RecordRPC counts one RPC call and observes its latency.
func (c *Collector) RecordRPC(procedure, code string, d time.Duration) {
	c.rpcs.WithLabelValues(procedure, code).Inc()
	c.rpcLatency.WithLabelValues(procedure).Observe(d.Seconds())
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
