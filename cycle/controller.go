package cycle

import (
	"sync"

	"github.com/bxtek/go-rig/logger"
)

// StepChangeHandler is a function type that represents a handler for step transitions.
// It is invoked whenever the current cycle step changes, either by a normal
// advance or by a direct jump.
//
// Note: the handler will be invoked in a blocking mode. Take care with long-running implementations.
//
// The handler function receives two arguments:
//   - prev: The step the machine was executing before the transition.
//   - cur: The step the machine is executing now.
type StepChangeHandler func(prev int, cur int)

// Controller maintains the cycle/mode/reset state of the rig and enforces its
// invariants. It is the single source of truth consulted by the host control
// loop and the operator interface every tick.
//
// All accessors and mutators are guarded by a single mutex, so a Controller
// may be shared between a control context and an operator/UI context. No
// cross-field atomicity is required beyond each individual call.
type Controller struct {
	mu sync.Mutex

	totalSteps   int
	currentStep  int
	previousStep int

	mode          Mode
	running       bool
	resetMode     bool
	runAfterReset bool

	logger   logger.Logger
	handlers []StepChangeHandler
}

// NewController creates a new Controller for a cycle of totalSteps steps,
// starting at step 0 with no mode selected, not running and not resetting.
//
// It accepts optional StepChangeHandler functions that will be invoked when
// the current step changes.
//
// Returns ErrInvalidStepCount if totalSteps is zero or negative.
func NewController(totalSteps int, handlers ...StepChangeHandler) (*Controller, error) {
	if totalSteps <= 0 {
		return nil, ErrInvalidStepCount
	}

	c := &Controller{
		totalSteps: totalSteps,
		logger:     logger.GetLogger(),
		handlers:   make([]StepChangeHandler, 0, len(handlers)),
	}
	c.handlers = append(c.handlers, handlers...)

	return c, nil
}

// AddHandler adds one or more StepChangeHandler functions to be invoked on step transitions.
func (c *Controller) AddHandler(handlers ...StepChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handlers...)
}

// TotalSteps returns the fixed number of steps in one full cycle.
func (c *Controller) TotalSteps() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.totalSteps
}

// SetStepMode selects manual single-step advance and deselects auto mode.
// Calling it repeatedly is a no-op.
func (c *Controller) SetStepMode() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeStep {
		return
	}

	c.logger.Debug("mode changed", "prev_mode", c.mode, "new_mode", ModeStep)
	c.mode = ModeStep
}

// StepMode returns if manual single-step advance is selected.
func (c *Controller) StepMode() bool {
	return c.Mode().IsStep()
}

// SetAutoMode selects automatic continuous advance and deselects step mode.
// Calling it repeatedly is a no-op.
func (c *Controller) SetAutoMode() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeAuto {
		return
	}

	c.logger.Debug("mode changed", "prev_mode", c.mode, "new_mode", ModeAuto)
	c.mode = ModeAuto
}

// AutoMode returns if automatic continuous advance is selected.
func (c *Controller) AutoMode() bool {
	return c.Mode().IsAuto()
}

// Mode returns the operator-selected step-advance mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mode
}

// SetMachineRunningState sets the running flag directly.
// It is used for explicit start/stop commands.
func (c *Controller) SetMachineRunningState(state bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running = state
}

// ToggleMachineRunningState inverts the running flag.
// It is used for a single start/stop control with no state of its own.
func (c *Controller) ToggleMachineRunningState() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running = !c.running
}

// MachineRunning returns if the machine is actively cycling.
func (c *Controller) MachineRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}

// SwitchToNextStep records the current step as the previous step and advances
// the current step by one, wrapping around to step 0 after the last step.
//
// The controller does not gate the advance on the running flag; whether to
// advance at all is a host policy decision layered on top.
func (c *Controller) SwitchToNextStep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.previousStep = c.currentStep
	c.currentStep = (c.currentStep + 1) % c.totalSteps

	// A single-step cycle wraps onto itself; there is no transition to report.
	if c.previousStep != c.currentStep {
		c.invokeHandlers(c.previousStep, c.currentStep)
	}
}

// SetCycleStepTo jumps the current step directly to step, recording the prior
// current step as the previous step so that edge detection still observes the
// transition. It is used to resume after reset or for operator overrides.
//
// Returns ErrStepOutOfRange and leaves the state untouched if step is outside
// [0, TotalSteps()).
func (c *Controller) SetCycleStepTo(step int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if step < 0 || step >= c.totalSteps {
		c.logger.Error("rejected cycle step assignment", "step", step, "total_steps", c.totalSteps)
		return ErrStepOutOfRange
	}

	c.previousStep = c.currentStep
	c.currentStep = step

	if c.previousStep != c.currentStep {
		c.invokeHandlers(c.previousStep, c.currentStep)
	}

	return nil
}

// CurrentCycleStep returns the step the machine is presently executing.
func (c *Controller) CurrentCycleStep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.currentStep
}

// PreviousCycleStep returns the step recorded before the last advance or jump.
func (c *Controller) PreviousCycleStep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.previousStep
}

// StepSwitchHappened returns true if a step transition occurred since the
// previous-step marker was last synchronized by AckStepSwitch or overwritten
// by the next advance.
//
// The host loop uses this to perform edge-triggered actions exactly once per
// step boundary rather than on every tick the machine dwells on a step.
func (c *Controller) StepSwitchHappened() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.currentStep != c.previousStep
}

// AckStepSwitch synchronizes the previous-step marker to the current step,
// consuming the pending step-switch edge. The host calls it at the end of any
// tick in which it processed the edge, so each transition is observed exactly
// once.
func (c *Controller) AckStepSwitch() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.previousStep = c.currentStep
}

// SetResetMode sets the reset-sequence flag directly.
//
// The primitive setters leave the interaction between reset mode, running and
// run-after-reset to the host. BeginReset and CompleteReset implement the
// usual orchestration for hosts that want it enforced.
func (c *Controller) SetResetMode(resetState bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resetMode = resetState
}

// ResetMode returns if the rig is currently in its reset sequence.
func (c *Controller) ResetMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.resetMode
}

// SetRunAfterReset sets the flag deciding whether the machine resumes running
// once the reset sequence completes. The flag is only meaningful while reset
// mode is active.
func (c *Controller) SetRunAfterReset(runAfterReset bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.runAfterReset = runAfterReset
}

// RunAfterReset returns if the machine should resume running once the reset
// sequence completes.
func (c *Controller) RunAfterReset() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.runAfterReset
}

// BeginReset enters the reset sequence: it records whether the machine was
// running so that CompleteReset can resume it, stops the machine and sets
// reset mode. Calling it while already resetting is a no-op, preserving the
// recorded resume decision.
func (c *Controller) BeginReset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resetMode {
		return
	}

	c.logger.Info("reset sequence started", "run_after_reset", c.running, "step", c.currentStep)
	c.runAfterReset = c.running
	c.running = false
	c.resetMode = true
}

// CompleteReset leaves the reset sequence: it clears reset mode, resumes
// running if run-after-reset was recorded and consumes the flag. Calling it
// while not resetting is a no-op.
func (c *Controller) CompleteReset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.resetMode {
		return
	}

	c.logger.Info("reset sequence completed", "resume", c.runAfterReset)
	c.resetMode = false
	c.running = c.runAfterReset
	c.runAfterReset = false
}

// RunState returns the derived run state of the rig. Resetting dominates
// running.
func (c *Controller) RunState() RunState {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.resetMode:
		return ResettingState
	case c.running:
		return RunningState
	default:
		return IdleState
	}
}

// invokeHandlers invokes all registered StepChangeHandler functions with the
// previous and current steps. Called with the mutex held.
func (c *Controller) invokeHandlers(prev int, cur int) {
	for _, handler := range c.handlers {
		if handler != nil {
			handler(prev, cur)
		}
	}
}
