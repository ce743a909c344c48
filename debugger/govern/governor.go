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

package govern

import (
	"context"
	"sync"

	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/logger"
)

// Governor implements the cpu.Attachment interface.
type Governor struct {
	crit sync.Mutex
	cond *sync.Cond

	state State
	steps int

	// the CPU is being run by Attach()
	attached bool

	// the halted callback has been added to the CPU
	registered bool

	// functions waiting to be run at the next boundary
	queue []func()

	// a fresh halt has been raised and not yet acknowledged
	fresh bool

	// whether the current period of waiting has been announced with a fresh
	// halt
	announced bool

	subscribers []chan struct{}

	// the reason for the most recent halt
	reason string

	// called at every boundary before the state is considered. returning a
	// non-empty string pauses the emulation with that reason
	check func(mc *cpu.CPU) string

	// called at every boundary
	hooks []func(mc *cpu.CPU)

	// closed when the state becomes Ending
	ending chan struct{}
}

// NewGovernor is the preferred method of initialisation for the Governor type.
func NewGovernor(mode Mode) *Governor {
	g := &Governor{
		ending: make(chan struct{}),
	}
	g.cond = sync.NewCond(&g.crit)

	switch mode {
	case ModeRun:
		g.state = Running
	default:
		g.state = Paused
	}

	return g
}

// State returns the current state of the emulation.
func (g *Governor) State() State {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.state
}

// Reason returns the reason for the most recent halt.
func (g *Governor) Reason() string {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.reason
}

// SetCheck sets the function to be called at every instruction boundary.
// Returning a non-empty string will pause the emulation. Used to implement
// execution breakpoints.
//
// The check is not made on the first boundary after leaving the paused state.
func (g *Governor) SetCheck(check func(mc *cpu.CPU) string) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.check = check
}

// AddHook adds a function to be called at every instruction boundary.
func (g *Governor) AddHook(hook func(mc *cpu.CPU)) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.hooks = append(g.hooks, hook)
}

// Halts returns a channel that will receive a value whenever a fresh halt is
// raised. Every call creates a new subscription. A halt raised while a
// previous halt is still waiting in the channel is dropped.
func (g *Governor) Halts() <-chan struct{} {
	g.crit.Lock()
	defer g.crit.Unlock()
	ch := make(chan struct{}, 1)
	g.subscribers = append(g.subscribers, ch)
	return ch
}

// IsFreshHalt returns true if a halt has been raised and not yet
// acknowledged.
func (g *Governor) IsFreshHalt() bool {
	g.crit.Lock()
	defer g.crit.Unlock()
	return g.fresh
}

// AcknowledgeHalt clears the fresh halt condition.
func (g *Governor) AcknowledgeHalt() {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.fresh = false
}

// raise a fresh halt. must be called with the critical section locked.
func (g *Governor) raise(reason string) {
	g.fresh = true
	g.reason = reason
	for _, ch := range g.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Step requests that the emulation execute the number of instructions and
// then pause. Ignored if the emulation has halted or is ending.
func (g *Governor) Step(n int) {
	g.crit.Lock()
	defer g.crit.Unlock()
	if g.state.IsTerminal() || n <= 0 {
		return
	}
	g.state = Stepping
	g.steps = n
	g.announced = false
	g.cond.Broadcast()
}

// Run requests that the emulation runs until paused.
func (g *Governor) Run() {
	g.crit.Lock()
	defer g.crit.Unlock()
	if g.state.IsTerminal() {
		return
	}
	g.state = Running
	g.announced = false
	g.cond.Broadcast()
}

// Pause requests that the emulation pauses at the next instruction boundary.
func (g *Governor) Pause(reason string) {
	g.crit.Lock()
	defer g.crit.Unlock()
	g.pause(reason)
}

func (g *Governor) pause(reason string) {
	if g.state == Running || g.state == Stepping {
		g.state = Paused
		g.reason = reason
		g.announced = false
	}
}

// Quit ends the emulation. Any waiting instruction boundary returns
// immediately.
func (g *Governor) Quit() {
	g.crit.Lock()
	defer g.crit.Unlock()
	if g.state == Ending {
		return
	}
	g.state = Ending
	close(g.ending)
	g.cond.Broadcast()
}

// Ending returns a channel that is closed when Quit() is called. Unlike an
// instruction boundary the channel can be selected on by code that is blocked
// inside an instruction.
func (g *Governor) Ending() <-chan struct{} {
	return g.ending
}

// Cancel implements the cpu.Attachment interface. The emulation stops after
// the current instruction completes.
func (g *Governor) Cancel() {
	g.Quit()
}

// Halted should be called when the CPU halts. It is suitable for use with
// cpu.AddHaltedCallback().
func (g *Governor) Halted(err error) {
	g.crit.Lock()
	defer g.crit.Unlock()
	if g.state.IsTerminal() {
		return
	}
	g.state = Halted
	g.raise(err.Error())
	g.cond.Broadcast()
}

// Boundary implements the cpu.Attachment interface.
func (g *Governor) Boundary(mc *cpu.CPU) bool {
	g.crit.Lock()
	defer g.crit.Unlock()

	for _, h := range g.hooks {
		h(mc)
	}

	g.service()

	if g.check != nil && (g.state == Running || g.state == Stepping) {
		if reason := g.check(mc); reason != "" {
			g.pause(reason)
		}
	}

	for {
		g.service()

		switch g.state {
		case Running:
			return true

		case Stepping:
			if g.steps > 0 {
				g.steps--
				return true
			}
			g.state = Paused
			g.reason = "step"
			g.announced = false

		case Paused:
			if !g.announced {
				g.announced = true
				g.raise(g.reason)
			}
			g.cond.Wait()

		default:
			return false
		}
	}
}

// service the sync queue. must be called with the critical section locked.
func (g *Governor) service() {
	for _, f := range g.queue {
		f()
	}
	clear(g.queue)
	g.queue = g.queue[:0]
}

// Sync runs the function at the next instruction boundary. If the CPU is not
// being run then the function is run immediately. Returns when the function
// has completed.
//
// Must not be called from the goroutine that is running the CPU.
func (g *Governor) Sync(f func()) {
	g.crit.Lock()

	if !g.attached {
		defer g.crit.Unlock()
		f()
		return
	}

	done := make(chan struct{})
	g.queue = append(g.queue, func() {
		f()
		close(done)
	})
	g.cond.Broadcast()
	g.crit.Unlock()

	<-done
}

// Attach runs the CPU with the Governor controlling progress. Returns when
// the CPU halts, the context is cancelled or Quit() is called.
func (g *Governor) Attach(ctx context.Context, mc *cpu.CPU) error {
	g.crit.Lock()
	g.attached = true
	if !g.registered {
		g.registered = true
		mc.AddHaltedCallback(g.Halted)
	}
	g.crit.Unlock()

	err := mc.Run(ctx, g)

	g.crit.Lock()
	defer g.crit.Unlock()
	g.attached = false
	g.service()

	if err != nil {
		logger.Logf(logger.Allow, "govern", "emulation stopped: %v", err)
	}

	return err
}

// Wait blocks until the emulation is ending.
func (g *Governor) Wait(ctx context.Context) {
	stop := context.AfterFunc(ctx, g.Quit)
	defer stop()

	g.crit.Lock()
	defer g.crit.Unlock()
	for g.state != Ending {
		g.cond.Wait()
	}
}
