package rig

import "errors"

var (
	// ErrConfigNil indicates that a nil Config was provided.
	ErrConfigNil = errors.New("engine config is nil")

	// ErrControllerNil indicates that a nil cycle.Controller was provided.
	ErrControllerNil = errors.New("cycle controller is nil")

	// ErrStepActionNil indicates that a nil step action was provided.
	ErrStepActionNil = errors.New("step action is nil")

	// ErrCommandQueueFull indicates that the operator command queue is full
	// and the dispatched command was dropped.
	ErrCommandQueueFull = errors.New("command queue is full")
)
