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

package gui_test

import (
	"testing"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/gui"
	"github.com/emu6502/emu6502/test"
)

func TestQueue(t *testing.T) {
	q := gui.NewQueue()

	_, ok := q.TryPop()
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, q.Push(gui.Command{Op: gui.OpClearScreen}))
	test.ExpectSuccess(t, q.TryPush(gui.Command{Op: gui.OpDrawPixel, X: 1, Y: 2}))
	test.ExpectEquality(t, q.Len(), 2)

	cmd, ok := q.TryPop()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd.Op, gui.OpClearScreen)
	cmd, ok = q.TryPop()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd.String(), "DRAW_PIXEL 1,2 #000000")

	// fill the queue
	for range gui.QueueCapacity {
		test.DemandSuccess(t, q.TryPush(gui.Command{}))
	}
	test.ExpectFailure(t, q.TryPush(gui.Command{}))

	// a blocked push returns when the queue is closed
	done := make(chan error)
	go func() {
		done <- q.Push(gui.Command{})
	}()
	q.Close()
	test.ExpectSuccess(t, curated.Is(<-done, gui.QueueClosed))

	// commands can be popped after closing
	_, ok = q.TryPop()
	test.ExpectSuccess(t, ok)
	test.ExpectFailure(t, q.TryPush(gui.Command{}))

	// closing more than once is allowed
	q.Close()
}

func TestEvents(t *testing.T) {
	ev := gui.NewEvents()
	for range gui.EventsCapacity {
		test.DemandSuccess(t, ev.Send(gui.Event{ID: gui.EventKeyboard, Key: "w", Down: true}))
	}

	// events are dropped when the channel is full
	test.ExpectFailure(t, ev.Send(gui.Event{ID: gui.EventWindowClose}))

	e, ok := ev.TryReceive()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Key, "w")
	test.ExpectEquality(t, e.ID.String(), "keyboard")
}

func TestFramebuffer(t *testing.T) {
	q := gui.NewQueue()
	fb := gui.NewFramebuffer()

	q.Push(gui.Command{Op: gui.OpSetResolution, W: 640, H: 640})
	q.Push(gui.Command{Op: gui.OpSetLogicalSize, W: 32, H: 32})
	q.Push(gui.Command{Op: gui.OpClearScreen, Colour: gui.Colour{R: 0x10}})
	q.Push(gui.Command{Op: gui.OpDrawPixel, X: 1, Y: 1, Colour: gui.Colour{R: 0xff, G: 0x80, B: 0x40}})
	q.Push(gui.Command{Op: gui.OpDrawPixel, X: 32, Y: 1})
	q.Push(gui.Command{Op: gui.OpSubscribeEvent, X: int(gui.EventKeyboard)})

	test.ExpectSuccess(t, fb.Drain(q))
	test.ExpectEquality(t, fb.Width, 640)
	test.ExpectEquality(t, fb.LogicalWidth, 32)
	test.ExpectEquality(t, fb.Pitch(), 128)
	test.ExpectEquality(t, len(fb.Pixels), 32*32*4)
	test.ExpectSuccess(t, fb.Dirty)
	test.ExpectSuccess(t, fb.IsSubscribed(gui.EventKeyboard))
	test.ExpectFailure(t, fb.IsSubscribed(gui.EventWindowClose))

	test.ExpectEquality(t, fb.Pixels[0], 0x10)
	test.ExpectEquality(t, fb.Pixels[3], 0xff)

	i := (32 + 1) * 4
	test.ExpectEquality(t, fb.Pixels[i], 0xff)
	test.ExpectEquality(t, fb.Pixels[i+1], 0x80)
	test.ExpectEquality(t, fb.Pixels[i+2], 0x40)

	fb.Clean()
	test.ExpectFailure(t, fb.Drain(q))
	test.ExpectFailure(t, fb.Dirty)

	q.Push(gui.Command{Op: gui.OpHaltEmulation})
	fb.Drain(q)
	test.ExpectSuccess(t, fb.Halted)
}

func TestDrainClosed(t *testing.T) {
	q := gui.NewQueue()
	fb := gui.NewFramebuffer()

	q.Push(gui.Command{Op: gui.OpClearScreen})
	q.Close()

	// commands pushed before the close are still applied
	fb.Drain(q)
	test.ExpectSuccess(t, fb.Dirty)
	test.ExpectSuccess(t, fb.Halted)
}
