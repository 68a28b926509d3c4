package scheduler

// EventType identifies a kind of recurring event. Only one event
// of each type can be scheduled at a time.
type EventType uint8

const (
	// DividerTick increments DIV.
	DividerTick EventType = iota
	// TimerTick increments TIMA at the rate selected by TAC.
	TimerTick
	// FrameEnd marks the end of a frame, entering vertical blank.
	FrameEnd

	eventTypes
)

func (e EventType) String() string {
	switch e {
	case DividerTick:
		return "DividerTick"
	case TimerTick:
		return "TimerTick"
	case FrameEnd:
		return "FrameEnd"
	default:
		return "Unknown"
	}
}

// Event is a node of the scheduler's event list.
type Event struct {
	cycle     uint64
	eventType EventType
	scheduled bool
	next      *Event
}
