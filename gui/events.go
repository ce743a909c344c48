// This file is part of Emu6502.
//
// Emu6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emu6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emu6502.  If not, see <https://www.gnu.org/licenses/>.

package gui

// EventID identifies the type of Event.
type EventID int

// List of valid events.
const (
	EventKeyboard EventID = iota
	EventWindowClose
)

func (id EventID) String() string {
	switch id {
	case EventKeyboard:
		return "keyboard"
	case EventWindowClose:
		return "window close"
	}
	return "unknown"
}

// Event is sent by the display to the emulation.
type Event struct {
	ID EventID

	// the key name for keyboard events. lower case for letter keys
	Key  string
	Down bool
}

// EventsCapacity is the number of events that can wait in an Events channel.
const EventsCapacity = 64

// Events is a bounded channel of events. Sending never blocks.
type Events struct {
	ch chan Event
}

// NewEvents is the preferred method of initialisation for the Events type.
func NewEvents() *Events {
	return &Events{
		ch: make(chan Event, EventsCapacity),
	}
}

// Send the event. The event is dropped if the channel is full, in which case
// false is returned.
func (e *Events) Send(ev Event) bool {
	select {
	case e.ch <- ev:
		return true
	default:
		return false
	}
}

// TryReceive returns the next event. Returns false if there are no events
// waiting.
func (e *Events) TryReceive() (Event, bool) {
	select {
	case ev := <-e.ch:
		return ev, true
	default:
		return Event{}, false
	}
}

// Chan returns the underlying channel for use in select statements.
func (e *Events) Chan() <-chan Event {
	return e.ch
}
