package emulator

import (
	"fmt"
	"strconv"
)

// CommandPacket is a command packet that is sent to the
// emulator to control it.
type CommandPacket struct {
	Command Command
	Data    []byte
}

// Command is a command that is sent to the emulator to
// control it.
type Command int

// ResponsePacket is a response packet that is sent
// from the emulator to the client.
type ResponsePacket struct {
	Command Command
	Data    []byte
	Error   error
}

const (
	// CommandPause pauses the emulator.
	CommandPause Command = iota
	// CommandResume resumes the emulator.
	CommandResume
	// CommandClose closes the emulator.
	CommandClose
	// CommandReset reloads the current program image and
	// resets the machine.
	CommandReset
	// CommandLoadROM loads the program image in Data.
	CommandLoadROM
	// CommandSetSpeed sets the speed multiplier of the
	// emulator, encoded as a decimal string in Data.
	CommandSetSpeed
)

func (c Command) String() string {
	switch c {
	case CommandPause:
		return "pause"
	case CommandResume:
		return "resume"
	case CommandClose:
		return "close"
	case CommandReset:
		return "reset"
	case CommandLoadROM:
		return "load-rom"
	case CommandSetSpeed:
		return "set-speed"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// SetSpeed returns a CommandSetSpeed packet for the given speed.
func SetSpeed(speed float64) CommandPacket {
	return CommandPacket{
		Command: CommandSetSpeed,
		Data:    []byte(strconv.FormatFloat(speed, 'f', -1, 64)),
	}
}

// Speed decodes the speed carried by a CommandSetSpeed packet.
func (p CommandPacket) Speed() (float64, error) {
	speed, err := strconv.ParseFloat(string(p.Data), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid speed %q: %w", p.Data, err)
	}
	if speed <= 0 {
		return 0, fmt.Errorf("invalid speed %v: must be positive", speed)
	}
	return speed, nil
}
