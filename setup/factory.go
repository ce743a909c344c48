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
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/gui"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/random"
)

// Environment is the context in which devices are created.
type Environment struct {
	// the memory bus devices can refer to. mirrors use this to access the
	// mirrored device
	Bus memory.Bus

	// display queue and events for devices that use the gui. both may be
	// nil
	Queue  *gui.Queue
	Events *gui.Events

	// source of random numbers for the RNG device. a new source is created
	// if this is nil
	Random *random.Random

	// relative filenames in device parameters are relative to this
	// directory
	Dir string
}

func (env Environment) path(filename string) string {
	if env.Dir == "" || filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(env.Dir, filename)
}

// Constructor creates a device from the device configuration.
type Constructor func(env Environment, dev *DeviceConfig) (memory.Device, error)

type registration struct {
	name string
	c    Constructor
}

var registry = struct {
	crit  sync.Mutex
	types map[string]registration
	names []string
}{
	types: make(map[string]registration),
}

// Register a device type. The type name and any aliases are matched without
// regard to case.
func Register(typeName string, c Constructor, aliases ...string) {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	r := registration{name: typeName, c: c}
	registry.names = append(registry.names, typeName)
	registry.types[strings.ToLower(typeName)] = r
	for _, a := range aliases {
		registry.types[strings.ToLower(a)] = r
	}
}

// Types returns the names of the registered device types.
func Types() []string {
	registry.crit.Lock()
	defer registry.crit.Unlock()
	n := slices.Clone(registry.names)
	slices.Sort(n)
	return n
}

func lookup(typeName string) (registration, bool) {
	registry.crit.Lock()
	defer registry.crit.Unlock()
	r, ok := registry.types[strings.ToLower(typeName)]
	return r, ok
}

// sameType returns true if both names refer to the same registered type.
func sameType(a, b string) bool {
	ra, oka := lookup(a)
	rb, okb := lookup(b)
	if !oka || !okb {
		return strings.EqualFold(a, b)
	}
	return ra.name == rb.name
}

// Build creates the devices in the configuration and registers them with
// the controller in the order they appear in the description.
func (cfg *Config) Build(env Environment, mc *memory.Controller) ([]memory.Device, error) {
	if env.Bus == nil {
		env.Bus = mc
	}

	var devs []memory.Device
	for _, d := range cfg.Devices {
		r, ok := lookup(d.Type)
		if !ok {
			return nil, curated.Errorf(UnknownType, d.Type)
		}

		dev, err := r.c(env, d)
		if err != nil {
			return nil, err
		}

		if err := mc.Register(dev); err != nil {
			return nil, err
		}
		devs = append(devs, dev)

		logger.Logf(logger.Allow, "setup", "created %s", d)
	}

	return devs, nil
}
