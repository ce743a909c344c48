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

package hardware

import (
	"context"
	"fmt"
	"io"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/debugger/govern"
	"github.com/emu6502/emu6502/gui"
	"github.com/emu6502/emu6502/hardware/cpu"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/random"
	"github.com/emu6502/emu6502/setup"
)

// Sentinel errors returned by the Machine type.
const (
	MachineError   = "machine: %v"
	NoStartAddress = "machine: no start address: %v"
)

// ResetVector is the address of the little endian start address used when no
// other start address is available.
const ResetVector = 0xfffc

// Options for the creation of a Machine.
type Options struct {
	// the initial state of the governor
	Mode govern.Mode

	// a start address that takes precedence over every other start address
	StartAddress uint16
	HasStart     bool

	// directory for relative filenames in the configuration
	Dir string

	// there is no display. devices are not given the display queue
	Headless bool
}

// Machine is the main container for the emulated components.
type Machine struct {
	Config *setup.Config

	Mem     *memory.Controller
	CPU     *cpu.CPU
	Gov     *govern.Governor
	Random  *random.Random
	Devices []memory.Device

	// commands for the display. consumed by the gui
	Queue *gui.Queue

	// events from the gui. window close events end the emulation and the
	// remaining events are forwarded to the devices
	Events *gui.Events

	// the events channel given to the devices
	deviceEvents *gui.Events

	opts Options
}

// NewMachine creates the machine described by the configuration. The machine
// is reset and ready to run.
func NewMachine(cfg *setup.Config, opts Options) (*Machine, error) {
	m := &Machine{
		Config:       cfg,
		Mem:          memory.NewController(nil),
		Gov:          govern.NewGovernor(opts.Mode),
		Queue:        gui.NewQueue(),
		Events:       gui.NewEvents(),
		deviceEvents: gui.NewEvents(),
		opts:         opts,
	}

	m.CPU = cpu.NewCPU(m.Mem)
	m.CPU.HaltOnIllegal = cfg.HaltOnIllegal

	// random numbers are seeded by the CPU clock
	m.Random = random.NewRandom(m.CPU)

	env := setup.Environment{
		Bus:    m.Mem,
		Queue:  m.Queue,
		Events: m.deviceEvents,
		Random: m.Random,
		Dir:    opts.Dir,
	}
	if opts.Headless {
		env.Queue = nil
	}

	var err error
	m.Devices, err = cfg.Build(env, m.Mem)
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	if err := m.Reset(); err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "machine", "%s: %d devices", cfg.Name, len(m.Devices))

	return m, nil
}

// Reset the CPU and every device and then load the start address. The start
// address is taken from the first of these that is available:
//
//  1. the StartAddress field of the Options
//  2. the startAddress of the configuration
//  3. a device with a start address, such as a ROM
//  4. the reset vector
func (m *Machine) Reset() error {
	m.CPU.Reset()

	if err := m.Mem.ResetAll(); err != nil {
		return curated.Errorf(MachineError, err)
	}

	switch {
	case m.opts.HasStart:
		m.CPU.LoadPC(m.opts.StartAddress)
		logger.Logf(logger.Allow, "machine", "start address $%04x (option)", m.opts.StartAddress)
	case m.Config.HasStart:
		m.CPU.LoadPC(m.Config.StartAddress)
		logger.Logf(logger.Allow, "machine", "start address $%04x (config)", m.Config.StartAddress)
	default:
		if a, ok := m.Mem.StartAddress(); ok {
			m.CPU.LoadPC(a)
			logger.Logf(logger.Allow, "machine", "start address $%04x (device)", a)
			break
		}
		if err := m.CPU.LoadPCIndirect(ResetVector); err != nil {
			return curated.Errorf(NoStartAddress, err)
		}
		logger.Logf(logger.Allow, "machine", "start address $%04x (reset vector)", m.CPU.PC.Address())
	}

	return nil
}

// Trace writes a line to the writer for every completed instruction. Must be
// called before Run().
func (m *Machine) Trace(w io.Writer) {
	m.Gov.AddHook(func(mc *cpu.CPU) {
		if mc.LastResult.Final {
			fmt.Fprintln(w, mc.LastResult.String())
		}
	})
}

// Dump writes a hex listing of every mapped part of the address space. Must
// not be called while the machine is running.
func (m *Machine) Dump(w io.Writer) error {
	for _, r := range m.Mem.MappedRanges() {
		fmt.Fprintf(w, "%s\n", r)
		if err := m.Mem.Dump(w, r.Origin, r.Memtop); err != nil {
			return err
		}
	}
	return nil
}

// forwardEvents passes events from the gui to the devices until the context
// is cancelled. A window close event ends the emulation.
func (m *Machine) forwardEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-m.Events.Chan():
			if ev.ID == gui.EventWindowClose {
				logger.Log(logger.Allow, "machine", "display closed")
				m.Gov.Quit()
				continue
			}
			if !m.deviceEvents.Send(ev) {
				logger.Logf(logger.Allow, "machine", "event dropped: %s", ev.ID)
			}
		}
	}
}

// closeQueue closes the display queue when the emulation is ending or the
// context is cancelled. A device blocked on a full queue returns from its
// push and the CPU reaches the next instruction boundary.
func (m *Machine) closeQueue(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-m.Gov.Ending():
	}
	m.Queue.Close()
}

// Run the emulation until the CPU halts, the emulation is ended with Quit()
// or the context is cancelled. The display is told to halt and the display
// queue is closed when Run() returns.
func (m *Machine) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go m.forwardEvents(ctx)
	go m.closeQueue(ctx)

	err := m.Gov.Attach(ctx, m.CPU)

	m.Queue.TryPush(gui.Command{Op: gui.OpHaltEmulation})

	if halted, herr := m.CPU.IsHalted(); halted {
		logger.Logf(logger.Allow, "machine", "cpu halted: %v", herr)
	}

	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
