package rig

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bxtek/go-rig/cycle"
)

// MetricCollectors returns prometheus collectors exposing the engine's
// counters and the controller's live cycle state. Register them with a
// prometheus.Registerer and serve them with promhttp.
func MetricCollectors(m *Metrics, ctrl *cycle.Controller) []prometheus.Collector {
	return []prometheus.Collector{
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "rig_ticks_total",
			Help: "Number of control-loop ticks processed.",
		}, func() float64 { return float64(m.TickCount.Load()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "rig_commands_total",
			Help: "Number of operator commands applied.",
		}, func() float64 { return float64(m.CommandCount.Load()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "rig_dropped_commands_total",
			Help: "Number of operator commands dropped because the queue was full.",
		}, func() float64 { return float64(m.DroppedCommandCount.Load()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "rig_step_switches_total",
			Help: "Number of step transitions driven by the engine.",
		}, func() float64 { return float64(m.StepSwitchCount.Load()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "rig_cycle_wraps_total",
			Help: "Number of completed full cycles.",
		}, func() float64 { return float64(m.WrapCount.Load()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "rig_resets_total",
			Help: "Number of reset sequences started.",
		}, func() float64 { return float64(m.ResetCount.Load()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "rig_current_step",
			Help: "Step the machine is presently executing.",
		}, func() float64 { return float64(ctrl.CurrentCycleStep()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "rig_machine_running",
			Help: "Whether the machine is actively cycling (1) or not (0).",
		}, func() float64 {
			if ctrl.MachineRunning() {
				return 1
			}
			return 0
		}),
	}
}
