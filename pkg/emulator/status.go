package emulator

// Status represents the status of the emulator. It can be one
// of the following:
//
//   - Running
//   - Halted
//   - Paused
//   - Errored
type Status int

const (
	// Running represents the status of the
	// CPU when it is executing instructions.
	Running Status = iota
	// Halted represents the status of the
	// CPU when it is idling in HALT, waiting
	// for an interrupt.
	Halted
	// Paused represents the status of the emulator
	// when it has been paused by a command.
	Paused
	// Errored represents the status of the
	// CPU when it has stopped on an undefined
	// opcode.
	Errored
)

func (s Status) String() string {
	switch s {
	case Running:
		return "Running"
	case Halted:
		return "Halted"
	case Paused:
		return "Paused"
	case Errored:
		return "Errored"
	default:
		return "Unknown"
	}
}

func (s Status) IsRunning() bool {
	return s == Running || s == Halted
}

func (s Status) IsHalted() bool {
	return s == Halted
}

func (s Status) IsErrored() bool {
	return s == Errored
}
