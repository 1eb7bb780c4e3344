package rig

import (
	"context"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/bxtek/go-rig/cycle"
	"github.com/bxtek/go-rig/internal/queue"
	"github.com/bxtek/go-rig/logger"
)

// StepAction is a function type invoked by the engine when the machine enters
// the step it is registered for. It fires once per step boundary, not on
// every tick the machine dwells on the step.
//
// Note: the action is invoked in a blocking mode inside the tick. Take care
// with long-running implementations.
type StepAction func(step int)

// Engine is the reference host loop around a cycle.Controller.
//
// Operator input arrives through Dispatch at any time; the engine applies the
// queued commands at the start of the next tick, so all controller mutation
// happens from the tick context in a fixed order.
type Engine struct {
	cfg    *Config
	ctrl   *cycle.Controller
	logger logger.Logger

	cmdMu    sync.Mutex
	commands *queue.Queue[Command]

	actions *xsync.MapOf[int, StepAction]
	metrics Metrics

	// ticks the machine has dwelled on the current step in auto mode
	dwellTicks int
}

// NewEngine creates a new Engine driving the given controller.
//
// A nil cfg selects the default configuration.
func NewEngine(ctrl *cycle.Controller, cfg *Config) (*Engine, error) {
	if ctrl == nil {
		return nil, ErrControllerNil
	}

	if cfg == nil {
		var err error
		cfg, err = NewConfig()
		if err != nil {
			return nil, err
		}
	}

	return &Engine{
		cfg:      cfg,
		ctrl:     ctrl,
		logger:   cfg.Logger(),
		commands: queue.New[Command](cfg.CommandQueueSize(), cfg.CommandQueueSize()),
		actions:  xsync.NewMapOf[int, StepAction](),
	}, nil
}

// Controller returns the cycle controller owned by the engine.
func (e *Engine) Controller() *cycle.Controller { return e.ctrl }

// Metrics returns the engine's metric counters.
func (e *Engine) Metrics() *Metrics { return &e.metrics }

// RegisterStepAction registers an action fired when the machine enters step.
// A later registration for the same step replaces the earlier one.
//
// Returns cycle.ErrStepOutOfRange if step is outside the controller's cycle
// and ErrStepActionNil if action is nil.
func (e *Engine) RegisterStepAction(step int, action StepAction) error {
	if action == nil {
		return ErrStepActionNil
	}

	if step < 0 || step >= e.ctrl.TotalSteps() {
		return cycle.ErrStepOutOfRange
	}

	e.actions.Store(step, action)

	return nil
}

// Dispatch queues an operator command for the next tick.
//
// It is safe to call from any goroutine. Returns ErrCommandQueueFull and
// drops the command if the queue is full.
func (e *Engine) Dispatch(cmd Command) error {
	e.cmdMu.Lock()
	defer e.cmdMu.Unlock()

	if !e.commands.Enqueue(cmd) {
		e.metrics.incDroppedCommandCount()
		e.logger.Warn("command dropped, queue full", "command", cmd.Type)
		return ErrCommandQueueFull
	}

	return nil
}

// Run drives the control loop at the configured tick interval until ctx is
// done. It returns the ctx error that ended the loop.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.cfg.TickInterval())
	defer ticker.Stop()

	e.logger.Info("engine started",
		"tick_interval", e.cfg.TickInterval(),
		"auto_advance_ticks", e.cfg.AutoAdvanceTicks(),
		"total_steps", e.ctrl.TotalSteps(),
	)

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("engine stopped", "ticks", e.metrics.TickCount.Load())
			return ctx.Err()
		case <-ticker.C:
			e.Tick()
		}
	}
}

// Tick performs one control-loop iteration: it drains queued operator
// commands, applies the auto-advance policy, and consumes a pending step
// edge by firing the registered action for the entered step.
//
// Tick is exported so hosts and tests can drive the loop from their own
// timing source instead of Run.
func (e *Engine) Tick() {
	e.metrics.incTickCount()

	e.drainCommands()
	e.autoAdvance()
	e.consumeStepEdge()
}

// drainCommands applies all commands queued since the previous tick.
func (e *Engine) drainCommands() {
	for {
		e.cmdMu.Lock()
		cmd, ok := e.commands.Dequeue()
		e.cmdMu.Unlock()
		if !ok {
			return
		}

		e.applyCommand(cmd)
	}
}

func (e *Engine) applyCommand(cmd Command) {
	e.metrics.incCommandCount()
	e.logger.Debug("apply command", "command", cmd.Type, "step", cmd.Step)

	switch cmd.Type {
	case CmdStart:
		e.ctrl.SetMachineRunningState(true)
	case CmdStop:
		e.ctrl.SetMachineRunningState(false)
	case CmdToggleRun:
		e.ctrl.ToggleMachineRunningState()
	case CmdSelectStepMode:
		e.ctrl.SetStepMode()
	case CmdSelectAutoMode:
		e.ctrl.SetAutoMode()
	case CmdStepOnce:
		if e.ctrl.StepMode() && e.advanceAllowed() {
			e.advance()
		} else {
			e.logger.Debug("step request ignored",
				"mode", e.ctrl.Mode(), "run_state", e.ctrl.RunState())
		}
	case CmdJumpToStep:
		if err := e.ctrl.SetCycleStepTo(cmd.Step); err != nil {
			e.logger.Error("jump to step rejected", "step", cmd.Step, "error", err)
		}
	case CmdBeginReset:
		e.metrics.incResetCount()
		e.ctrl.BeginReset()
	case CmdCompleteReset:
		e.ctrl.CompleteReset()
	default:
		e.logger.Warn("unknown command ignored", "command", uint32(cmd.Type))
	}
}

// autoAdvance advances the cycle after the configured dwell time in auto mode.
func (e *Engine) autoAdvance() {
	if !e.ctrl.AutoMode() || !e.advanceAllowed() {
		e.dwellTicks = 0
		return
	}

	e.dwellTicks++
	if e.dwellTicks < e.cfg.AutoAdvanceTicks() {
		return
	}

	e.dwellTicks = 0
	e.advance()
}

// advanceAllowed reports whether the step counter may move: the machine must
// be running and not in its reset sequence.
func (e *Engine) advanceAllowed() bool {
	return e.ctrl.MachineRunning() && !e.ctrl.ResetMode()
}

func (e *Engine) advance() {
	wrapping := e.ctrl.CurrentCycleStep() == e.ctrl.TotalSteps()-1

	e.ctrl.SwitchToNextStep()
	e.metrics.incStepSwitchCount()
	if wrapping {
		e.metrics.incWrapCount()
	}
}

// consumeStepEdge fires the registered action for the step the machine just
// entered and acknowledges the edge, so the action runs exactly once per
// step boundary.
func (e *Engine) consumeStepEdge() {
	if !e.ctrl.StepSwitchHappened() {
		return
	}

	step := e.ctrl.CurrentCycleStep()
	e.logger.Debug("step switch", "prev_step", e.ctrl.PreviousCycleStep(), "step", step)

	if action, ok := e.actions.Load(step); ok {
		action(step)
	}

	e.ctrl.AckStepSwitch()
}
