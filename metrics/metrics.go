// Package metrics 提供有序集合的 Prometheus 指标收集功能.
package metrics

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Tsukikage7/collections-kit/collections/treeset"
)

var (
	// ErrNilConfig 配置为空.
	ErrNilConfig = errors.New("metrics: config is nil")

	// ErrRegisterMetric 指标注册失败.
	ErrRegisterMetric = errors.New("metrics: failed to register metric")
)

// 操作结果标签值.
const (
	ResultChanged   = "changed"
	ResultUnchanged = "unchanged"
)

// 操作标签值.
const (
	OpInsert = "insert"
	OpErase  = "erase"
	OpClear  = "clear"
)

var _ treeset.Observer = (*PrometheusCollector)(nil)

// PrometheusCollector 将 TreeSet 的结构变更记录为 Prometheus 指标.
//
// 指标:
//   - <ns>_<sub>_operations_total{op,result}
//   - <ns>_<sub>_rebalance_total{op}
//   - <ns>_<sub>_released_nodes_total
//   - <ns>_<sub>_size
//
// 同一个收集器可以挂到多个集合上，此时 size 反映最近一次变更的集合.
//
// 示例:
//
//	c := metrics.MustNewPrometheus(metrics.DefaultConfig())
//	ts := treeset.NewOrdered[int](treeset.WithObserver(c))
//	http.Handle(c.GetPath(), c.GetHandler())
type PrometheusCollector struct {
	config *Config

	operations *prometheus.CounterVec
	rebalances *prometheus.CounterVec
	released   prometheus.Counter
	size       prometheus.Gauge

	registry *prometheus.Registry
}

// NewPrometheus 创建 Prometheus 指标收集器.
func NewPrometheus(cfg *Config) (*PrometheusCollector, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	cfg.ApplyDefaults()

	// 创建新的注册表，避免与默认注册表冲突
	registry := prometheus.NewRegistry()

	c := &PrometheusCollector{
		config:   cfg,
		registry: registry,
	}

	c.operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "operations_total",
			Help:      "Total number of set operations",
		},
		[]string{"op", "result"},
	)

	c.rebalances = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "rebalance_total",
			Help:      "Total number of AA-tree rebalancing steps",
		},
		[]string{"op"},
	)

	c.released = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "released_nodes_total",
			Help:      "Total number of nodes released by clear",
		},
	)

	c.size = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "size",
			Help:      "Number of values in the set",
		},
	)

	for _, collector := range []prometheus.Collector{c.operations, c.rebalances, c.released, c.size} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRegisterMetric, err)
		}
	}

	return c, nil
}

// MustNewPrometheus 创建指标收集器，失败时 panic.
func MustNewPrometheus(cfg *Config) *PrometheusCollector {
	c, err := NewPrometheus(cfg)
	if err != nil {
		panic(err)
	}
	return c
}

// Inserted 记录插入.
func (c *PrometheusCollector) Inserted(added bool, size int) {
	c.operations.WithLabelValues(OpInsert, result(added)).Inc()
	c.size.Set(float64(size))
}

// Erased 记录删除.
func (c *PrometheusCollector) Erased(removed bool, size int) {
	c.operations.WithLabelValues(OpErase, result(removed)).Inc()
	c.size.Set(float64(size))
}

// Rebalanced 记录重平衡步骤.
func (c *PrometheusCollector) Rebalanced(op treeset.RebalanceOp) {
	c.rebalances.WithLabelValues(string(op)).Inc()
}

// Cleared 记录清空.
func (c *PrometheusCollector) Cleared(released int) {
	c.operations.WithLabelValues(OpClear, result(released > 0)).Inc()
	c.released.Add(float64(released))
	c.size.Set(0)
}

// Registry 返回指标注册表.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

// GetHandler 返回指标暴露的 HTTP Handler.
func (c *PrometheusCollector) GetHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// GetPath 返回指标暴露路径.
func (c *PrometheusCollector) GetPath() string {
	return c.config.Path
}

func result(changed bool) string {
	if changed {
		return ResultChanged
	}
	return ResultUnchanged
}
