// Package metrics exports property resolution statistics to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dshills/chartcfg/internal/native"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "chartcfg"

// Observer counts resolutions per providing tier and skipped values per
// kind. It implements defaults.Observer.
type Observer struct {
	registry   *prometheus.Registry
	resolved   *prometheus.CounterVec
	mismatches *prometheus.CounterVec
	reloads    *prometheus.CounterVec
}

// NewObserver creates an observer with its own registry. An empty
// namespace uses DefaultNamespace.
func NewObserver(namespace string) *Observer {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	o := &Observer{
		registry: prometheus.NewRegistry(),
		resolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_total",
				Help:      "Typed property reads by the tier that supplied the value",
			},
			[]string{"origin"},
		),
		mismatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolution_fallbacks_total",
				Help:      "Tiers skipped because they held a value of the wrong kind",
			},
			[]string{"origin", "kind"},
		),
		reloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "layer_loads_total",
				Help:      "Defaults documents loaded per layer and result",
			},
			[]string{"layer", "result"},
		),
	}
	o.registry.MustRegister(o.resolved, o.mismatches, o.reloads)
	return o
}

// Resolved records a typed read answered by origin.
func (o *Observer) Resolved(property, origin string) {
	if o == nil {
		return
	}
	o.resolved.WithLabelValues(tierOf(origin)).Inc()
}

// Mismatch records a tier skipped because it held the wrong kind.
func (o *Observer) Mismatch(property, origin string, got native.Kind) {
	if o == nil {
		return
	}
	o.mismatches.WithLabelValues(tierOf(origin), got.String()).Inc()
}

// LayerLoaded records the outcome of loading a defaults document.
func (o *Observer) LayerLoaded(layer string, err error) {
	if o == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	o.reloads.WithLabelValues(layer, result).Inc()
}

// Registry returns the registry holding the counters.
func (o *Observer) Registry() *prometheus.Registry { return o.registry }

// Handler returns an HTTP handler serving the counters.
func (o *Observer) Handler() http.Handler {
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// tierOf keeps label cardinality bounded: "chart:line.scales.x" and
// "chart:bar" both count as "chart".
func tierOf(origin string) string {
	for i := 0; i < len(origin); i++ {
		switch origin[i] {
		case ':', '.':
			return origin[:i]
		}
	}
	return origin
}
