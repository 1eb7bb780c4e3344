// Package rig provides a reference host loop around a cycle.Controller.
//
// The Engine owns a controller and drives it once per control-loop tick: it
// drains queued operator commands, advances the cycle step according to the
// selected mode and run state, fires registered per-step actions exactly once
// per step boundary, and maintains counters suitable for export as prometheus
// metrics.
//
// The engine implements the gating policy the controller itself deliberately
// leaves open: the step counter advances only while the machine is running
// and not resetting. In auto mode the engine advances every AutoAdvanceTicks
// ticks; in step mode it advances only on a StepOnce command.
package rig
