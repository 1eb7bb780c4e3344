package rig

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMetricCollectors(t *testing.T) {
	require := require.New(t)

	engine := newTestEngine(t, 4, WithAutoAdvanceTicks(1))

	registry := prometheus.NewPedanticRegistry()
	registry.MustRegister(MetricCollectors(engine.Metrics(), engine.Controller())...)

	require.NoError(engine.Dispatch(Command{Type: CmdSelectAutoMode}))
	require.NoError(engine.Dispatch(Command{Type: CmdStart}))
	for i := 0; i < 3; i++ {
		engine.Tick()
	}

	families, err := registry.Gather()
	require.NoError(err)

	values := make(map[string]float64, len(families))
	for _, mf := range families {
		require.Len(mf.GetMetric(), 1)
		m := mf.GetMetric()[0]
		switch {
		case m.GetCounter() != nil:
			values[mf.GetName()] = m.GetCounter().GetValue()
		case m.GetGauge() != nil:
			values[mf.GetName()] = m.GetGauge().GetValue()
		}
	}

	require.Equal(float64(3), values["rig_ticks_total"])
	require.Equal(float64(2), values["rig_commands_total"])
	require.Equal(float64(3), values["rig_step_switches_total"])
	require.Equal(float64(0), values["rig_cycle_wraps_total"])
	require.Equal(float64(3), values["rig_current_step"])
	require.Equal(float64(1), values["rig_machine_running"])
}
