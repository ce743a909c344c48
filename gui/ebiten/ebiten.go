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

package ebiten

import (
	"io"
	"strings"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/emu6502/emu6502/gui"
	"github.com/emu6502/emu6502/version"
)

// the keys that are reported to the emulation
var watchedKeys = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeySpace, ebiten.KeyEnter,
}

// GUI is an Ebitengine display for the emulation. It implements the
// ebiten.Game interface.
type GUI struct {
	fb     *gui.Framebuffer
	queue  *gui.Queue
	events *gui.Events

	screen *ebiten.Image
	keys   map[ebiten.Key]bool

	quit atomic.Bool
}

// NewGUI is the preferred method of initialisation for the GUI type.
func NewGUI(queue *gui.Queue, events *gui.Events) (*GUI, error) {
	eg := &GUI{
		fb:     gui.NewFramebuffer(),
		queue:  queue,
		events: events,
		keys:   make(map[ebiten.Key]bool),
	}
	return eg, nil
}

// Destroy implements the gui.GUI interface.
func (eg *GUI) Destroy(_ io.Writer) {
	eg.quit.Store(true)
}

// Service implements the gui.GUI interface. Ebitengine services the window
// itself so there is nothing to do.
func (eg *GUI) Service() {
}

// Run implements the gui.Runner interface.
func (eg *GUI) Run() error {
	ebiten.SetWindowTitle(version.ApplicationName)
	ebiten.SetWindowSize(640, 640)
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(eg)
	eg.events.Send(gui.Event{ID: gui.EventWindowClose})
	return err
}

// Update implements the ebiten.Game interface.
func (eg *GUI) Update() error {
	if eg.quit.Load() || eg.fb.Halted {
		return ebiten.Termination
	}

	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	if eg.fb.Drain(eg.queue) {
		ebiten.SetWindowSize(eg.fb.Width, eg.fb.Height)
		eg.screen = nil
	}

	if eg.fb.IsSubscribed(gui.EventKeyboard) {
		for _, k := range watchedKeys {
			down := ebiten.IsKeyPressed(k)
			if down != eg.keys[k] {
				eg.keys[k] = down
				eg.events.Send(gui.Event{
					ID:   gui.EventKeyboard,
					Key:  keyName(k),
					Down: down,
				})
			}
		}
	}

	return nil
}

// keyName returns the name of the key in the same form as the SDL display.
func keyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeyArrowUp:
		return "up"
	case ebiten.KeyArrowDown:
		return "down"
	case ebiten.KeyArrowLeft:
		return "left"
	case ebiten.KeyArrowRight:
		return "right"
	case ebiten.KeyEnter:
		return "return"
	}
	return strings.ToLower(k.String())
}

// Draw implements the ebiten.Game interface.
func (eg *GUI) Draw(screen *ebiten.Image) {
	if eg.screen == nil {
		eg.screen = ebiten.NewImage(eg.fb.LogicalWidth, eg.fb.LogicalHeight)
		eg.fb.Dirty = true
	}
	if eg.fb.Dirty {
		eg.screen.WritePixels(eg.fb.Pixels)
		eg.fb.Clean()
	}
	screen.DrawImage(eg.screen, nil)
}

// Layout implements the ebiten.Game interface.
func (eg *GUI) Layout(_, _ int) (int, int) {
	return eg.fb.LogicalWidth, eg.fb.LogicalHeight
}
