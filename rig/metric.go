package rig

import (
	"sync/atomic"
)

// Metrics contains atomic counters for an engine.
// Metrics can be used as the value of a prometheus CounterFunc or GaugeFunc;
// see MetricCollectors.
type Metrics struct {
	// TickCount indicates the number of control-loop ticks processed.
	TickCount atomic.Uint64
	// CommandCount indicates the number of operator commands applied.
	CommandCount atomic.Uint64
	// DroppedCommandCount indicates the number of operator commands dropped
	// because the command queue was full.
	DroppedCommandCount atomic.Uint64

	// StepSwitchCount indicates the number of step transitions driven by the engine.
	StepSwitchCount atomic.Uint64
	// WrapCount indicates the number of completed full cycles.
	WrapCount atomic.Uint64
	// ResetCount indicates the number of reset sequences started.
	ResetCount atomic.Uint64
}

func (m *Metrics) incTickCount() {
	m.TickCount.Add(1)
}

func (m *Metrics) incCommandCount() {
	m.CommandCount.Add(1)
}

func (m *Metrics) incDroppedCommandCount() {
	m.DroppedCommandCount.Add(1)
}

func (m *Metrics) incStepSwitchCount() {
	m.StepSwitchCount.Add(1)
}

func (m *Metrics) incWrapCount() {
	m.WrapCount.Add(1)
}

func (m *Metrics) incResetCount() {
	m.ResetCount.Add(1)
}
