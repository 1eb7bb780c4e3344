// Package rigintegration contains integration tests that exercise the full
// operator-to-engine-to-controller path: mode selection, auto cycling,
// manual stepping, and a reset-and-resume sequence, driven tick by tick.
package rigintegration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bxtek/go-rig/cycle"
	"github.com/bxtek/go-rig/rig"
)

// tickUntil drives the engine until cond holds or maxTicks is exhausted.
func tickUntil(t *testing.T, engine *rig.Engine, maxTicks int, cond func() bool) {
	t.Helper()

	for i := 0; i < maxTicks; i++ {
		if cond() {
			return
		}
		engine.Tick()
	}
	require.True(t, cond(), "condition not reached within %d ticks", maxTicks)
}

func TestFullProductionScenario(t *testing.T) {
	require := require.New(t)

	const totalSteps = 6

	ctrl, err := cycle.NewController(totalSteps)
	require.NoError(err)

	cfg, err := rig.NewConfig(rig.WithAutoAdvanceTicks(2))
	require.NoError(err)

	engine, err := rig.NewEngine(ctrl, cfg)
	require.NoError(err)

	// Record every actuator pulse; each step boundary must pulse exactly once.
	pulses := make([]int, 0, 4*totalSteps)
	for step := 0; step < totalSteps; step++ {
		require.NoError(engine.RegisterStepAction(step, func(step int) {
			pulses = append(pulses, step)
		}))
	}

	// Operator powers up the rig in auto mode.
	require.NoError(engine.Dispatch(rig.Command{Type: rig.CmdSelectAutoMode}))
	require.NoError(engine.Dispatch(rig.Command{Type: rig.CmdStart}))

	// Let the machine complete one full cycle.
	tickUntil(t, engine, 4*totalSteps, func() bool {
		return engine.Metrics().WrapCount.Load() == 1
	})
	require.Equal(0, ctrl.CurrentCycleStep())
	require.Equal([]int{1, 2, 3, 4, 5, 0}, pulses)

	// Mid-cycle the operator requests a reset.
	tickUntil(t, engine, 4*totalSteps, func() bool {
		return ctrl.CurrentCycleStep() == 2
	})
	require.NoError(engine.Dispatch(rig.Command{Type: rig.CmdBeginReset}))
	engine.Tick()
	require.True(ctrl.RunState().IsResetting())
	require.False(ctrl.MachineRunning())
	require.True(ctrl.RunAfterReset())

	// The cycle is frozen while the rig re-homes.
	pulsesBefore := len(pulses)
	for i := 0; i < 10; i++ {
		engine.Tick()
	}
	require.Equal(2, ctrl.CurrentCycleStep())
	require.Equal(pulsesBefore, len(pulses))

	// Reset completes at the home step and the machine resumes on its own.
	require.NoError(engine.Dispatch(rig.Command{Type: rig.CmdJumpToStep, Step: 0}))
	require.NoError(engine.Dispatch(rig.Command{Type: rig.CmdCompleteReset}))
	engine.Tick()
	require.True(ctrl.RunState().IsRunning())
	require.False(ctrl.RunAfterReset())

	tickUntil(t, engine, 4*totalSteps, func() bool {
		return ctrl.CurrentCycleStep() == 3
	})

	// Operator switches to step mode for a manual inspection pass.
	require.NoError(engine.Dispatch(rig.Command{Type: rig.CmdSelectStepMode}))
	engine.Tick()
	require.True(ctrl.StepMode())
	require.False(ctrl.AutoMode())

	manualBefore := ctrl.CurrentCycleStep()
	for i := 0; i < 5; i++ {
		engine.Tick()
	}
	require.Equal(manualBefore, ctrl.CurrentCycleStep())

	require.NoError(engine.Dispatch(rig.Command{Type: rig.CmdStepOnce}))
	engine.Tick()
	require.Equal(manualBefore+1, ctrl.CurrentCycleStep())

	// Shut down.
	require.NoError(engine.Dispatch(rig.Command{Type: rig.CmdStop}))
	engine.Tick()
	require.True(ctrl.RunState().IsIdle())
}

func TestResetWhileIdleStaysIdle(t *testing.T) {
	require := require.New(t)

	ctrl, err := cycle.NewController(4)
	require.NoError(err)

	engine, err := rig.NewEngine(ctrl, nil)
	require.NoError(err)

	require.NoError(engine.Dispatch(rig.Command{Type: rig.CmdBeginReset}))
	engine.Tick()
	require.True(ctrl.RunState().IsResetting())
	require.False(ctrl.RunAfterReset())

	require.NoError(engine.Dispatch(rig.Command{Type: rig.CmdCompleteReset}))
	engine.Tick()
	require.True(ctrl.RunState().IsIdle())
	require.False(ctrl.MachineRunning())
}
