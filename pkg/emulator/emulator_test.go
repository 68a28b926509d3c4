package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSpeed(t *testing.T) {
	speed, err := SetSpeed(2.5).Speed()
	require.NoError(t, err)
	assert.Equal(t, 2.5, speed)

	_, err = CommandPacket{Command: CommandSetSpeed, Data: []byte("fast")}.Speed()
	assert.Error(t, err)

	_, err = SetSpeed(-1).Speed()
	assert.Error(t, err)
}

func TestStatus(t *testing.T) {
	assert.True(t, Halted.IsRunning())
	assert.False(t, Paused.IsRunning())
	assert.True(t, Errored.IsErrored())
	assert.Equal(t, "Paused", Paused.String())
	assert.Equal(t, "Unknown", Status(42).String())
	assert.Equal(t, "set-speed", CommandSetSpeed.String())
}
