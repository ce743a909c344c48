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

package sdl

import (
	"io"
	"strings"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/gui"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/version"
)

// GUI is an SDL display for the emulation.
type GUI struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	fb     *gui.Framebuffer
	queue  *gui.Queue
	events *gui.Events

	fpsLimiter *fpsLimiter
}

// NewGUI is the preferred method of initialisation for the GUI type. Commands
// are read from the queue and events are sent to the events channel.
func NewGUI(queue *gui.Queue, events *gui.Events) (*GUI, error) {
	gtv := &GUI{
		fb:         gui.NewFramebuffer(),
		queue:      queue,
		events:     events,
		fpsLimiter: newFPSLimiter(60),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(gui.Unavailable, err)
	}

	// the window is hidden until the resolution has been set
	gtv.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(gtv.fb.Width), int32(gtv.fb.Height), uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(gui.Unavailable, err)
	}

	gtv.renderer, err = sdl.CreateRenderer(gtv.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		gtv.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(gui.Unavailable, err)
	}

	err = gtv.resize()
	if err != nil {
		gtv.Destroy(nil)
		return nil, curated.Errorf(gui.Unavailable, err)
	}

	return gtv, nil
}

// resize the window and recreate the texture to match the framebuffer.
func (gtv *GUI) resize() error {
	if gtv.texture != nil {
		gtv.texture.Destroy()
		gtv.texture = nil
	}

	var err error
	gtv.texture, err = gtv.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STREAMING),
		int32(gtv.fb.LogicalWidth), int32(gtv.fb.LogicalHeight))
	if err != nil {
		return err
	}

	err = gtv.renderer.SetLogicalSize(int32(gtv.fb.LogicalWidth), int32(gtv.fb.LogicalHeight))
	if err != nil {
		return err
	}

	gtv.window.SetSize(int32(gtv.fb.Width), int32(gtv.fb.Height))

	if gtv.fb.Width > 1 && gtv.fb.Height > 1 {
		gtv.window.Show()
	}

	return nil
}

// Destroy implements the gui.GUI interface.
func (gtv *GUI) Destroy(output io.Writer) {
	if gtv.texture != nil {
		if err := gtv.texture.Destroy(); err != nil && output != nil {
			io.WriteString(output, err.Error())
		}
	}
	if gtv.renderer != nil {
		if err := gtv.renderer.Destroy(); err != nil && output != nil {
			io.WriteString(output, err.Error())
		}
	}
	if gtv.window != nil {
		if err := gtv.window.Destroy(); err != nil && output != nil {
			io.WriteString(output, err.Error())
		}
	}
	sdl.Quit()
}

// Service implements the gui.GUI interface.
func (gtv *GUI) Service() {
	gtv.serviceEvents()

	if gtv.fb.Drain(gtv.queue) {
		if err := gtv.resize(); err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
	}

	gtv.fpsLimiter.wait()

	if !gtv.fb.Dirty {
		return
	}
	gtv.fb.Clean()

	if err := gtv.texture.Update(nil, gtv.fb.Pixels, gtv.fb.Pitch()); err != nil {
		logger.Log(logger.Allow, "sdl", err)
		return
	}
	if err := gtv.renderer.Clear(); err != nil {
		logger.Log(logger.Allow, "sdl", err)
		return
	}
	if err := gtv.renderer.Copy(gtv.texture, nil, nil); err != nil {
		logger.Log(logger.Allow, "sdl", err)
		return
	}
	gtv.renderer.Present()
}

func (gtv *GUI) serviceEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			gtv.events.Send(gui.Event{ID: gui.EventWindowClose})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 || !gtv.fb.IsSubscribed(gui.EventKeyboard) {
				continue
			}
			gtv.events.Send(gui.Event{
				ID:   gui.EventKeyboard,
				Key:  strings.ToLower(sdl.GetKeyName(ev.Keysym.Sym)),
				Down: ev.Type == sdl.KEYDOWN,
			})
		}
	}
}
