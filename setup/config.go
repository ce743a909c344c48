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
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/paths"
)

// List of errors returned by the package.
const (
	LoadError     = "setup: %v"
	MissingParam  = "setup: %s %s: missing parameter %s"
	BadParam      = "setup: %s %s: parameter %s: %v"
	UnnamedDevice = "setup: device %d has no type or instance name"
	DuplicateName = "setup: more than one device named %s"
	BadOverride   = "setup: override %q: %v"
	UnknownType   = "setup: unknown device type %s"
)

// MachinesSubDir is the directory in the resource path that contains the
// named machine descriptions.
const MachinesSubDir = "machines"

// DefaultName is used when the description does not name itself.
const DefaultName = "NO_CONFIG_NAME_GIVEN"

// Config is a description of the machine.
type Config struct {
	Name         string
	StartAddress uint16
	HasStart     bool
	DisplayType  string
	Devices      []*DeviceConfig

	// options for the CPU
	HaltOnIllegal bool
}

// DeviceConfig is a single device in the machine description.
type DeviceConfig struct {
	Type         string
	InstanceName string

	// parameters by name. numbers are stored in decimal
	Params map[string]string
}

func (dev *DeviceConfig) String() string {
	return dev.Type + "." + dev.InstanceName
}

// Has returns true if the parameter has been specified.
func (dev *DeviceConfig) Has(name string) bool {
	_, ok := dev.Params[name]
	return ok
}

// Str returns the named parameter. An empty string is returned if the
// parameter is not specified.
func (dev *DeviceConfig) Str(name string) string {
	return dev.Params[name]
}

// Int returns the value of the numeric parameter. It is an error for the
// parameter to be missing.
func (dev *DeviceConfig) Int(name string) (int, error) {
	s, ok := dev.Params[name]
	if !ok {
		return 0, curated.Errorf(MissingParam, dev.Type, dev.InstanceName, name)
	}
	v, err := parseNumber(s)
	if err != nil {
		return 0, curated.Errorf(BadParam, dev.Type, dev.InstanceName, name, err)
	}
	return v, nil
}

// IntDefault returns the value of the numeric parameter or the default value
// if the parameter has not been specified.
func (dev *DeviceConfig) IntDefault(name string, def int) (int, error) {
	if !dev.Has(name) {
		return def, nil
	}
	return dev.Int(name)
}

// Address returns the value of the parameter as a 16 bit address.
func (dev *DeviceConfig) Address(name string) (uint16, error) {
	v, err := dev.Int(name)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 0xffff {
		return 0, curated.Errorf(BadParam, dev.Type, dev.InstanceName, name, "not a 16 bit address")
	}
	return uint16(v), nil
}

// AddressDefault is like Address() but returns the default value if the
// parameter has not been specified.
func (dev *DeviceConfig) AddressDefault(name string, def uint16) (uint16, error) {
	if !dev.Has(name) {
		return def, nil
	}
	return dev.Address(name)
}

// parseNumber accepts decimal and hexadecimal, with either the 0x or $ prefix.
func parseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// parseBool accepts the same values as strconv.ParseBool plus yes/no and
// on/off.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}

// the layout of the JSON file. devices are decoded separately because every
// field other than type and instanceName is a parameter.
type jsonConfig struct {
	ConfigName   string            `json:"configName"`
	StartAddress json.RawMessage   `json:"startAddress"`
	DisplayType  string            `json:"displayType"`
	Devices      []json.RawMessage `json:"devices"`
	CPU          struct {
		HaltOnIllegal bool `json:"haltOnIllegal"`
	} `json:"cpu"`
}

// rawString returns the JSON value as a string. Strings are unquoted and
// numbers are returned as they appear in the JSON.
func rawString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b), true
	}
	return "", false
}

// Parse a machine description.
func Parse(r io.Reader) (*Config, error) {
	var j jsonConfig
	if err := json.NewDecoder(r).Decode(&j); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	cfg := &Config{
		Name:          j.ConfigName,
		DisplayType:   j.DisplayType,
		HaltOnIllegal: j.CPU.HaltOnIllegal,
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.DisplayType == "" {
		cfg.DisplayType = "none"
	}

	if len(j.StartAddress) > 0 {
		s, ok := rawString(j.StartAddress)
		if !ok {
			return nil, curated.Errorf(LoadError, "startAddress is not a number")
		}
		if err := cfg.setStartAddress(s); err != nil {
			return nil, err
		}
	} else {
		logger.Log(logger.Allow, "setup", "no start address in machine description")
	}

	for i, raw := range j.Devices {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, curated.Errorf(LoadError, err)
		}

		dev := &DeviceConfig{
			Params: make(map[string]string),
		}
		for k, v := range fields {
			s, ok := rawString(v)
			if !ok {
				return nil, curated.Errorf(LoadError, "device %d: field %s is not a simple value", i, k)
			}
			switch k {
			case "type":
				dev.Type = s
			case "instanceName":
				dev.InstanceName = s
			default:
				dev.Params[k] = s
			}
		}

		if dev.Type == "" || dev.InstanceName == "" {
			return nil, curated.Errorf(UnnamedDevice, i)
		}
		if cfg.Device(dev.InstanceName) != nil {
			return nil, curated.Errorf(DuplicateName, dev.InstanceName)
		}

		cfg.Devices = append(cfg.Devices, dev)
	}

	if len(cfg.Devices) == 0 {
		logger.Logf(logger.Allow, "setup", "%s: no devices in machine description", cfg.Name)
	}

	return cfg, nil
}

func (cfg *Config) setStartAddress(s string) error {
	v, err := parseNumber(s)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	if v < 0 || v > 0xffff {
		return curated.Errorf(LoadError, "start address is not a 16 bit address")
	}
	cfg.StartAddress = uint16(v)
	cfg.HasStart = true
	return nil
}

// Load a machine description from a file. If the filename does not exist as
// given, the machines directory of the resource path is searched for a file
// with that name and the .json extension.
func Load(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		pth, perr := paths.ResourcePath(MachinesSubDir, filename+".json")
		if perr != nil {
			return nil, curated.Errorf(LoadError, err)
		}
		var ferr error
		f, ferr = os.Open(pth)
		if ferr != nil {
			return nil, curated.Errorf(LoadError, err)
		}
	}
	defer f.Close()

	logger.Logf(logger.Allow, "setup", "loading machine description from %s", f.Name())
	return Parse(f)
}

// NewConfig returns an empty machine description. Devices can be added with
// overrides.
func NewConfig(name string) *Config {
	if name == "" {
		name = DefaultName
	}
	return &Config{
		Name:        name,
		DisplayType: "none",
	}
}

// Device returns the device with the instance name. Returns nil if there is
// no such device.
func (cfg *Config) Device(instanceName string) *DeviceConfig {
	for _, d := range cfg.Devices {
		if d.InstanceName == instanceName {
			return d
		}
	}
	return nil
}
