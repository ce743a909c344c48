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

package setup

import (
	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/hardware/memory/devices"
	"github.com/emu6502/emu6502/hardware/peripherals/easy6502"
	"github.com/emu6502/emu6502/hardware/peripherals/uart"
)

// the names of the built in device types are the same as the names used by
// the machine descriptions of the Easy6502 tools.
func init() {
	Register("RAM", newRAM, "ram")
	Register("ROM", newROM, "rom")
	Register("MirrorMemory", newMirror, "mirror")
	Register("RngDev", newRNG, "rng")
	Register("UART", newUART, "uart")
	Register("Easy6502JsDisplay", newDisplay, "easy6502display")
	Register("Easy6502InputDevice", newInput, "easy6502input")
}

func newRAM(_ Environment, dev *DeviceConfig) (memory.Device, error) {
	origin, err := dev.Address("startAddress")
	if err != nil {
		return nil, err
	}
	size, err := dev.Int("size")
	if err != nil {
		return nil, err
	}
	return devices.NewRAM(dev.InstanceName, origin, size)
}

// the romFilename parameter is the name of a binary file. the size of the
// ROM is the size of the file.
func newROM(env Environment, dev *DeviceConfig) (memory.Device, error) {
	fn := dev.Str("romFilename")
	if fn == "" {
		return nil, curated.Errorf(MissingParam, dev.Type, dev.InstanceName, "romFilename")
	}

	origin, err := dev.Address("startAddress")
	if err != nil {
		return nil, err
	}

	rom, err := devices.LoadROM(dev.InstanceName, origin, env.path(fn))
	if err != nil {
		return nil, err
	}

	if dev.Has("startEmulatorAddress") {
		pc, err := dev.Address("startEmulatorAddress")
		if err != nil {
			return nil, err
		}
		rom.SetStartAddress(pc)
	}

	return rom, nil
}

func newMirror(env Environment, dev *DeviceConfig) (memory.Device, error) {
	origin, err := dev.Address("startAddress")
	if err != nil {
		return nil, err
	}
	size, err := dev.Int("size")
	if err != nil {
		return nil, err
	}
	target, err := dev.Address("originalMemoryAddress")
	if err != nil {
		return nil, err
	}

	// the size of the mirrored area defaults to the size of the mirror
	targetSize, err := dev.IntDefault("originalMemorySize", size)
	if err != nil {
		return nil, err
	}

	return devices.NewMirror(dev.InstanceName, origin, size, env.Bus, target, targetSize)
}

func newRNG(env Environment, dev *DeviceConfig) (memory.Device, error) {
	origin, err := dev.Address("startAddress")
	if err != nil {
		return nil, err
	}
	size, err := dev.IntDefault("size", 1)
	if err != nil {
		return nil, err
	}
	return devices.NewRNG(dev.InstanceName, origin, size, env.Random)
}

func newUART(_ Environment, dev *DeviceConfig) (memory.Device, error) {
	origin, err := dev.Address("startAddress")
	if err != nil {
		return nil, err
	}
	port, err := dev.Int("portNumber")
	if err != nil {
		return nil, err
	}
	return uart.NewUART(dev.InstanceName, origin, port)
}

func newDisplay(env Environment, dev *DeviceConfig) (memory.Device, error) {
	origin, err := dev.AddressDefault("startAddress", easy6502.DisplayOrigin)
	if err != nil {
		return nil, err
	}
	return easy6502.NewDisplay(dev.InstanceName, origin, env.Queue)
}

func newInput(env Environment, dev *DeviceConfig) (memory.Device, error) {
	origin, err := dev.AddressDefault("startAddress", easy6502.InputOrigin)
	if err != nil {
		return nil, err
	}
	return easy6502.NewInput(dev.InstanceName, origin, env.Queue, env.Events)
}
