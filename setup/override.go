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
	"strings"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/logger"
)

// Override is a single change to the machine description.
type Override struct {
	Type     string
	Instance string
	Member   string
	Value    string
}

func (o Override) String() string {
	return o.Type + "." + o.Instance + "." + o.Member + "=" + o.Value
}

// ParseOverride parses a string of the form type.instance.member=value.
func ParseOverride(s string) (Override, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return Override{}, curated.Errorf(BadOverride, s, "no value")
	}

	parts := strings.Split(strings.TrimSpace(key), ".")
	if len(parts) != 3 {
		return Override{}, curated.Errorf(BadOverride, s, "key should be type.instance.member")
	}
	for _, p := range parts {
		if p == "" {
			return Override{}, curated.Errorf(BadOverride, s, "empty field in key")
		}
	}

	return Override{
		Type:     parts[0],
		Instance: parts[1],
		Member:   parts[2],
		Value:    strings.TrimSpace(value),
	}, nil
}

// Apply the overrides to the configuration in order.
func (cfg *Config) Apply(overrides ...Override) error {
	for _, o := range overrides {
		if err := cfg.apply(o); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "setup", "override: %s", o)
	}
	return nil
}

func (cfg *Config) apply(o Override) error {
	switch strings.ToLower(o.Type) {
	case "config":
		switch o.Member {
		case "configName":
			cfg.Name = o.Value
		case "displayType":
			cfg.DisplayType = o.Value
		case "startAddress":
			if err := cfg.setStartAddress(o.Value); err != nil {
				return curated.Errorf(BadOverride, o.String(), err)
			}
		default:
			return curated.Errorf(BadOverride, o.String(), "unknown config member")
		}
		return nil

	case "cpu":
		switch o.Member {
		case "haltOnIllegal":
			v, err := parseBool(o.Value)
			if err != nil {
				return curated.Errorf(BadOverride, o.String(), err)
			}
			cfg.HaltOnIllegal = v
		default:
			return curated.Errorf(BadOverride, o.String(), "unknown cpu member")
		}
		return nil
	}

	if _, ok := lookup(o.Type); !ok {
		return curated.Errorf(BadOverride, o.String(), curated.Errorf(UnknownType, o.Type))
	}

	dev := cfg.Device(o.Instance)
	if dev == nil {
		dev = &DeviceConfig{
			Type:         o.Type,
			InstanceName: o.Instance,
			Params:       make(map[string]string),
		}
		cfg.Devices = append(cfg.Devices, dev)
		logger.Logf(logger.Allow, "setup", "adding %s", dev)
	} else if !sameType(dev.Type, o.Type) {
		return curated.Errorf(BadOverride, o.String(), "instance is a "+dev.Type)
	}

	switch o.Member {
	case "type", "instanceName":
		return curated.Errorf(BadOverride, o.String(), "member cannot be changed")
	}
	dev.Params[o.Member] = o.Value

	return nil
}
