package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		expected string
	}{
		{
			name:     "ModeUnset",
			mode:     ModeUnset,
			expected: "unset",
		},
		{
			name:     "ModeStep",
			mode:     ModeStep,
			expected: "step",
		},
		{
			name:     "ModeAuto",
			mode:     ModeAuto,
			expected: "auto",
		},
		{
			name:     "UnknownMode",
			mode:     Mode(99),
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.String())
		})
	}
}

func TestMode_Predicates(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		unset bool
		step  bool
		auto  bool
	}{
		{
			name:  "ModeUnset",
			mode:  ModeUnset,
			unset: true,
		},
		{
			name: "ModeStep",
			mode: ModeStep,
			step: true,
		},
		{
			name: "ModeAuto",
			mode: ModeAuto,
			auto: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unset, tt.mode.IsUnset())
			assert.Equal(t, tt.step, tt.mode.IsStep())
			assert.Equal(t, tt.auto, tt.mode.IsAuto())
		})
	}
}
