package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingService struct {
	name    string
	initErr error
	log     *[]string
}

func (r *recordingService) Name() string { return r.name }

func (r *recordingService) Initialize() error {
	*r.log = append(*r.log, r.name)
	return r.initErr
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	var log []string
	reg := NewRegistry()
	svc := &recordingService{name: "alpha", log: &log}

	require.NoError(t, reg.RegisterService(svc))
	assert.True(t, reg.HasService("alpha"))
	assert.False(t, reg.HasService("beta"))

	got, err := reg.GetService("alpha")
	require.NoError(t, err)
	assert.Same(t, svc, got)

	_, err = reg.GetService("beta")
	assert.EqualError(t, err, "service beta not found")

	err = reg.RegisterService(&recordingService{name: "alpha", log: &log})
	assert.EqualError(t, err, "service alpha already registered")
	assert.Len(t, reg.GetAllServices(), 1)
}

func TestRegistry_InitializeAllInOrder(t *testing.T) {
	var log []string
	reg := NewRegistry()
	for _, name := range []string{"configuration", "catalog", "history", "autocomplete"} {
		require.NoError(t, reg.RegisterService(&recordingService{name: name, log: &log}))
	}

	require.NoError(t, reg.InitializeAll())
	assert.Equal(t, []string{"configuration", "catalog", "history", "autocomplete"}, log)
}

func TestRegistry_InitializeAllStopsOnError(t *testing.T) {
	var log []string
	reg := NewRegistry()
	require.NoError(t, reg.RegisterService(&recordingService{name: "first", log: &log, initErr: errors.New("boom")}))
	require.NoError(t, reg.RegisterService(&recordingService{name: "second", log: &log}))

	err := reg.InitializeAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize service first")
	assert.Equal(t, []string{"first"}, log)
}

func TestLookup(t *testing.T) {
	original := GetGlobalRegistry()
	t.Cleanup(func() { SetGlobalRegistry(original) })

	reg := NewRegistry()
	SetGlobalRegistry(reg)
	require.NoError(t, reg.RegisterService(NewStopwatchService(nil)))

	sw, err := Lookup[*StopwatchService]("stopwatch")
	require.NoError(t, err)
	assert.NotNil(t, sw)

	_, err = Lookup[*HistoryService]("stopwatch")
	assert.ErrorContains(t, err, "unexpected type")

	_, err = Lookup[*HistoryService]("history")
	assert.ErrorContains(t, err, "not found")
}
