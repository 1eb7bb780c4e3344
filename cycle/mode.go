package cycle

// Mode represents the operator-selected step-advance mode of the rig.
//
// It replaces a pair of mutually exclusive booleans with a single tagged
// value, so a state where both step mode and auto mode are selected cannot
// be represented.
type Mode uint32

// IsUnset returns if no mode has been selected yet.
func (m Mode) IsUnset() bool { return m == ModeUnset }

// IsStep returns if manual single-step advance is selected.
func (m Mode) IsStep() bool { return m == ModeStep }

// IsAuto returns if automatic continuous advance is selected.
func (m Mode) IsAuto() bool { return m == ModeAuto }

// String returns string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeUnset:
		return "unset"
	case ModeStep:
		return "step"
	case ModeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Step-advance modes selectable from the operator panel.
const (
	// ModeUnset indicates that the operator has not selected a mode yet.
	// This is the initial mode after construction.
	ModeUnset Mode = iota
	// ModeStep indicates that step advance is manually triggered one step at a time.
	ModeStep
	// ModeAuto indicates that steps advance automatically under host timing logic.
	ModeAuto
)
