// Package event holds the events a running emulator sends to its
// display.Driver. It is kept apart from display so that the
// emulator can import it without importing every sink.
package event

// Type tells the display.Driver how to treat an Event.
type Type int

const (
	// Quit means the emulator has stopped producing frames and
	// the display.Driver should return from Start.
	Quit Type = iota
	// Title carries a new window title as a string, normally the
	// cartridge title followed by the measured FPS.
	Title
)

func (t Type) String() string {
	switch t {
	case Quit:
		return "Quit"
	case Title:
		return "Title"
	}
	return "Unknown"
}

// Event is sent from the emulator to the display.Driver. Data
// depends on Type and is nil for Quit.
type Event struct {
	Type Type
	Data any
}
