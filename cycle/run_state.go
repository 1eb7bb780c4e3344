package cycle

// RunState is a derived view of the run/reset flags of a Controller.
//
// Resetting dominates Running: while the rig performs its reset sequence the
// derived state is ResettingState regardless of the running flag.
type RunState uint32

// IsIdle returns if the machine is neither running nor resetting.
func (rs RunState) IsIdle() bool { return rs == IdleState }

// IsRunning returns if the machine is actively cycling.
func (rs RunState) IsRunning() bool { return rs == RunningState }

// IsResetting returns if the rig is performing its reset sequence.
func (rs RunState) IsResetting() bool { return rs == ResettingState }

// String returns string representation of the run state.
func (rs RunState) String() string {
	switch rs {
	case IdleState:
		return "idle"
	case RunningState:
		return "running"
	case ResettingState:
		return "resetting"
	default:
		return "unknown"
	}
}

// Run states of the rig.
const (
	// IdleState indicates that the machine is stopped and no reset sequence is active.
	IdleState RunState = iota
	// RunningState indicates that the machine is actively cycling.
	RunningState
	// ResettingState indicates that the rig is performing its reset sequence.
	ResettingState
)
