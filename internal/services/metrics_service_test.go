package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsService_Counters(t *testing.T) {
	m := NewMetricsService()
	require.NoError(t, m.Initialize())
	assert.Equal(t, "metrics", m.Name())

	m.IncCalculation("math-basic", OutcomeOK)
	m.IncCalculation("math-basic", OutcomeOK)
	m.IncCalculation("math-fractions", OutcomeInvalid)
	m.IncKeyPress("number")
	m.SetHistorySize(3)

	assert.Equal(t, 2.0, m.Value("calchub_calculations_total", "calculator=math-basic,outcome=ok"))
	assert.Equal(t, 1.0, m.Value("calchub_calculations_total", "calculator=math-fractions,outcome=invalid"))
	assert.Equal(t, 1.0, m.Value("calchub_key_presses_total", "kind=number"))
	assert.Equal(t, 3.0, m.Value("calchub_history_entries", ""))
	assert.Zero(t, m.Value("calchub_key_presses_total", "kind=science"))
}

func TestMetricsService_SnapshotSorted(t *testing.T) {
	m := NewMetricsService()
	m.IncKeyPress("operator")
	m.IncCalculation("math-scientific", OutcomeOK)
	m.IncKeyPress("equals")

	stats, err := m.Snapshot()
	require.NoError(t, err)

	var names []string
	for _, s := range stats {
		names = append(names, s.Name+"{"+s.Labels+"}")
	}
	assert.Equal(t, []string{
		"calchub_calculations_total{calculator=math-scientific,outcome=ok}",
		"calchub_history_entries{}",
		"calchub_key_presses_total{kind=equals}",
		"calchub_key_presses_total{kind=operator}",
	}, names)
}

func TestMetricsService_NilReceiver(t *testing.T) {
	var m *MetricsService
	assert.NotPanics(t, func() {
		m.IncCalculation("math-basic", OutcomeOK)
		m.IncKeyPress("number")
		m.SetHistorySize(1)
	})
	_, err := m.Snapshot()
	assert.Error(t, err)
	assert.Zero(t, m.Value("calchub_history_entries", ""))
}
