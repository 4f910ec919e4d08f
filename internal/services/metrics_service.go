package services

import (
	"fmt"
	"sort"
	"strings"

	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Outcome labels for calculations.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

// Stat is one gathered sample, flattened for display.
type Stat struct {
	Name   string
	Labels string
	Value  float64
}

// MetricsService counts session activity on a private Prometheus registry.
// Methods are safe on a nil receiver so callers need not check for the service.
type MetricsService struct {
	registry     *prom.Registry
	calculations *prom.CounterVec
	keyPresses   *prom.CounterVec
	history      prom.Gauge
}

// NewMetricsService creates the collectors and registers them on a fresh registry.
func NewMetricsService() *MetricsService {
	m := &MetricsService{registry: prom.NewRegistry()}
	m.calculations = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "calchub",
		Name:      "calculations_total",
		Help:      "Calculator evaluations by calculator and outcome",
	}, []string{"calculator", "outcome"})
	m.keyPresses = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "calchub",
		Name:      "key_presses_total",
		Help:      "Keypad presses by key kind",
	}, []string{"kind"})
	m.history = prom.NewGauge(prom.GaugeOpts{
		Namespace: "calchub",
		Name:      "history_entries",
		Help:      "Entries currently held in the calculation history",
	})
	m.registry.MustRegister(m.calculations, m.keyPresses, m.history)
	return m
}

// Name returns the service name "metrics" for registration.
func (m *MetricsService) Name() string {
	return "metrics"
}

// Initialize is a no-op; collectors are registered on construction.
func (m *MetricsService) Initialize() error {
	return nil
}

// IncCalculation records one evaluation.
func (m *MetricsService) IncCalculation(calculatorID, outcome string) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(calculatorID, outcome).Inc()
}

// IncKeyPress records one keypad press.
func (m *MetricsService) IncKeyPress(kind string) {
	if m == nil {
		return
	}
	m.keyPresses.WithLabelValues(kind).Inc()
}

// SetHistorySize records the current history length.
func (m *MetricsService) SetHistorySize(n int) {
	if m == nil {
		return
	}
	m.history.Set(float64(n))
}

// Registry exposes the underlying registry.
func (m *MetricsService) Registry() *prom.Registry {
	return m.registry
}

// Snapshot gathers every sample, sorted by metric name and labels.
func (m *MetricsService) Snapshot() ([]Stat, error) {
	if m == nil {
		return nil, fmt.Errorf("metrics service not available")
	}
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var stats []Stat
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			stats = append(stats, Stat{
				Name:   family.GetName(),
				Labels: formatLabels(metric.GetLabel()),
				Value:  sampleValue(family.GetType(), metric),
			})
		}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Name != stats[j].Name {
			return stats[i].Name < stats[j].Name
		}
		return stats[i].Labels < stats[j].Labels
	})
	return stats, nil
}

// Value returns the sample with the given name and labels, or 0 when absent.
func (m *MetricsService) Value(name, labels string) float64 {
	stats, err := m.Snapshot()
	if err != nil {
		return 0
	}
	for _, s := range stats {
		if s.Name == name && s.Labels == labels {
			return s.Value
		}
	}
	return 0
}

func formatLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	return strings.Join(parts, ",")
}

func sampleValue(kind dto.MetricType, metric *dto.Metric) float64 {
	switch kind {
	case dto.MetricType_COUNTER:
		return metric.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return metric.GetGauge().GetValue()
	default:
		return metric.GetUntyped().GetValue()
	}
}
