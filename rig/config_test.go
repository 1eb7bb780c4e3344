package rig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bxtek/go-rig/logger"
)

func TestNewConfigDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := NewConfig()
	require.NoError(err)
	require.Equal(100*time.Millisecond, cfg.TickInterval())
	require.Equal(10, cfg.AutoAdvanceTicks())
	require.Equal(16, cfg.CommandQueueSize())
	require.NotNil(cfg.Logger())
}

func TestConfigOptions(t *testing.T) {
	require := require.New(t)

	mockLogger := logger.NewMockLogger()
	cfg, err := NewConfig(
		WithTickInterval(25*time.Millisecond),
		WithAutoAdvanceTicks(3),
		WithCommandQueueSize(8),
		WithLogger(mockLogger),
	)
	require.NoError(err)
	require.Equal(25*time.Millisecond, cfg.TickInterval())
	require.Equal(3, cfg.AutoAdvanceTicks())
	require.Equal(8, cfg.CommandQueueSize())
	require.Equal(mockLogger, cfg.Logger())
}

func TestConfigOptionValidation(t *testing.T) {
	require := require.New(t)

	_, err := NewConfig(WithTickInterval(500 * time.Microsecond))
	require.Error(err)

	_, err = NewConfig(WithTickInterval(11 * time.Second))
	require.Error(err)

	_, err = NewConfig(WithAutoAdvanceTicks(0))
	require.Error(err)

	_, err = NewConfig(WithCommandQueueSize(0))
	require.Error(err)

	_, err = NewConfig(WithLogger(nil))
	require.Error(err)
}
