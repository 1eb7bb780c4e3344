package rig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		name     string
		cmdType  CommandType
		expected string
	}{
		{
			name:     "CmdStart",
			cmdType:  CmdStart,
			expected: "start",
		},
		{
			name:     "CmdStop",
			cmdType:  CmdStop,
			expected: "stop",
		},
		{
			name:     "CmdToggleRun",
			cmdType:  CmdToggleRun,
			expected: "toggle-run",
		},
		{
			name:     "CmdSelectStepMode",
			cmdType:  CmdSelectStepMode,
			expected: "select-step-mode",
		},
		{
			name:     "CmdSelectAutoMode",
			cmdType:  CmdSelectAutoMode,
			expected: "select-auto-mode",
		},
		{
			name:     "CmdStepOnce",
			cmdType:  CmdStepOnce,
			expected: "step-once",
		},
		{
			name:     "CmdJumpToStep",
			cmdType:  CmdJumpToStep,
			expected: "jump-to-step",
		},
		{
			name:     "CmdBeginReset",
			cmdType:  CmdBeginReset,
			expected: "begin-reset",
		},
		{
			name:     "CmdCompleteReset",
			cmdType:  CmdCompleteReset,
			expected: "complete-reset",
		},
		{
			name:     "UnknownCommand",
			cmdType:  CommandType(99),
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cmdType.String())
		})
	}
}
