// Package cycle implements the cycle-control core of an automated test/production rig.
//
// The central type is Controller, the authoritative source of truth for the
// rig's cycle position and operating modes. It tracks which step of a
// fixed-length operating cycle the machine is in, whether the machine is
// running, whether the operator selected manual step-by-step advance or
// automatic cycling, and whether the rig is performing a reset sequence.
//
// Surrounding hardware-interface code (actuator drivers, sensor polling,
// operator panel I/O, timers) consults and updates the controller once per
// control-loop tick. The controller itself performs no I/O and holds no
// timing logic; every operation is a constant-time state read or write.
//
// Step-transition detection is edge based: StepSwitchHappened reports whether
// the step changed since the previous-step marker was last synchronized, and
// AckStepSwitch consumes the edge. This lets a host loop fire one-time
// actions exactly once per step boundary instead of on every tick the
// machine dwells on a step.
package cycle
