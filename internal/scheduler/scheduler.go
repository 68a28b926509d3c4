package scheduler

import (
	"fmt"
	"strings"
)

// Scheduler is a simple event scheduler that can be used to schedule events
// to be executed at a specific cycle.
//
// The scheduler is a linked list of events, sorted by the cycle at which
// they should be executed. When an event is scheduled, it is inserted into
// the list in the correct position, and when the scheduler is ticked, every
// event that has come due is executed and removed from the list, in order.
//
// While an event handler runs, the scheduler's cycle counter reads the cycle
// the event was due at, so a handler that schedules itself again keeps an
// exact period no matter how coarse the ticks are.
type Scheduler struct {
	cycles uint64
	root   *Event

	eventHandlers [eventTypes]func()
	events        [eventTypes]*Event
}

// NewScheduler returns a new Scheduler.
func NewScheduler() *Scheduler {
	s := &Scheduler{}

	// preallocate one event per type, so that scheduling
	// never allocates
	for i := range s.events {
		s.events[i] = &Event{eventType: EventType(i)}
	}

	return s
}

// Cycle returns the current cycle.
func (s *Scheduler) Cycle() uint64 {
	return s.cycles
}

// RegisterEvent registers the function called when an event of the
// given type comes due.
func (s *Scheduler) RegisterEvent(eventType EventType, fn func()) {
	s.eventHandlers[eventType] = fn
}

// Tick advances the scheduler by the given number of cycles,
// executing every event scheduled up to and including the new cycle.
func (s *Scheduler) Tick(c uint64) {
	target := s.cycles + c

	for s.root != nil && s.root.cycle <= target {
		event := s.root
		s.root = event.next
		event.next = nil
		event.scheduled = false

		s.cycles = event.cycle
		if fn := s.eventHandlers[event.eventType]; fn != nil {
			fn()
		}
	}

	s.cycles = target
}

// ScheduleEvent schedules an event to be executed the given number
// of cycles from now. If the event is already scheduled, it is moved.
func (s *Scheduler) ScheduleEvent(eventType EventType, cycles uint64) {
	s.DescheduleEvent(eventType)

	this := s.events[eventType]
	this.cycle = s.cycles + cycles
	this.scheduled = true

	// the event should be executed before any other event
	if s.root == nil || this.cycle < s.root.cycle {
		this.next = s.root
		s.root = this
		return
	}

	// find the last event due at or before this one
	prev := s.root
	for prev.next != nil && prev.next.cycle <= this.cycle {
		prev = prev.next
	}
	this.next = prev.next
	prev.next = this
}

// DescheduleEvent removes the event from the list, if scheduled.
func (s *Scheduler) DescheduleEvent(eventType EventType) {
	this := s.events[eventType]
	if !this.scheduled {
		return
	}

	var prev *Event
	for event := s.root; event != nil; event = event.next {
		if event == this {
			if prev == nil {
				s.root = event.next
			} else {
				prev.next = event.next
			}
			break
		}
		prev = event
	}

	this.next = nil
	this.scheduled = false
}

// Until returns the number of cycles until the given event is due,
// and false if it is not scheduled.
func (s *Scheduler) Until(eventType EventType) (uint64, bool) {
	this := s.events[eventType]
	if !this.scheduled {
		return 0, false
	}
	return this.cycle - s.cycles, true
}

func (s *Scheduler) String() string {
	var b strings.Builder
	for event := s.root; event != nil; event = event.next {
		fmt.Fprintf(&b, "%s:%d->", event.eventType, event.cycle)
	}
	return b.String()
}
