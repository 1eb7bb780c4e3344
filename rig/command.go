package rig

// CommandType identifies an operator command applied by the engine at the
// start of a tick.
type CommandType uint32

// Operator commands accepted by the engine.
const (
	// CmdStart starts the machine.
	CmdStart CommandType = iota + 1
	// CmdStop stops the machine.
	CmdStop
	// CmdToggleRun inverts the running state, for a single start/stop control.
	CmdToggleRun
	// CmdSelectStepMode selects manual single-step advance.
	CmdSelectStepMode
	// CmdSelectAutoMode selects automatic continuous advance.
	CmdSelectAutoMode
	// CmdStepOnce requests a single step advance. Honored only in step mode
	// while the machine is running and not resetting.
	CmdStepOnce
	// CmdJumpToStep jumps the cycle directly to Command.Step.
	CmdJumpToStep
	// CmdBeginReset enters the reset sequence, recording whether to resume.
	CmdBeginReset
	// CmdCompleteReset leaves the reset sequence, resuming if recorded.
	CmdCompleteReset
)

// String returns string representation of the command type.
func (ct CommandType) String() string {
	switch ct {
	case CmdStart:
		return "start"
	case CmdStop:
		return "stop"
	case CmdToggleRun:
		return "toggle-run"
	case CmdSelectStepMode:
		return "select-step-mode"
	case CmdSelectAutoMode:
		return "select-auto-mode"
	case CmdStepOnce:
		return "step-once"
	case CmdJumpToStep:
		return "jump-to-step"
	case CmdBeginReset:
		return "begin-reset"
	case CmdCompleteReset:
		return "complete-reset"
	default:
		return "unknown"
	}
}

// Command represents an operator command queued for the engine.
//
// Step is only meaningful for CmdJumpToStep.
type Command struct {
	Type CommandType
	Step int
}
