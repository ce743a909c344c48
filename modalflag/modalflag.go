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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"strings"

	"github.com/emu6502/emu6502/curated"
)

const modeSeparator = "/"

// Error patterns returned by the package.
const (
	BadFlags  = "modalflag: %v"
	NoHandler = "modalflag: no handler for %s mode"
	NoMode    = "modalflag: no mode has been selected"
)

// SubMode is a mode that can be selected by the first argument of a layer of
// arguments. A SubMode with a Run function can be started with Dispatch().
type SubMode struct {
	Name string

	// one line summary shown in the help
	Summary string

	Run func(md *Modes) error
}

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Modes struct {
	// where help messages are printed
	Output io.Writer

	// flags for the current layer of arguments. replaced by NewArgs() and
	// NewMode()
	flags  *flag.FlagSet
	parsed bool

	args []string
	next int

	// sub-modes for the current layer. the first entry is the default
	subModes []SubMode

	// the sub-mode chosen by the most recent Parse(). nil if the layer had no
	// sub-modes
	chosen *SubMode

	// every sub-mode chosen since NewArgs()
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns the selected modes joined with a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs with a string of arguments (from the command line for example).
// Any previously selected modes are forgotten.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.next = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = nil
	md.chosen = nil
	md.additionalHelp = ""
	md.parsed = false
}

// AdditionalHelp sets text to be displayed after the list of flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns true if Parse() has been called since the most recent
// NewArgs() or NewMode(), whether or not it succeeded.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// AddSubModes adds sub-modes without handlers. The first sub-mode added to a
// layer is the default. Names are case insensitive.
func (md *Modes) AddSubModes(names ...string) {
	for _, n := range names {
		md.AddSubMode(n, "", nil)
	}
}

// AddSubMode adds a sub-mode with a summary for the help message and a
// function to be called by Dispatch() when the sub-mode is selected.
func (md *Modes) AddSubMode(name string, summary string, run func(md *Modes) error) {
	md.subModes = append(md.subModes, SubMode{
		Name:    strings.ToUpper(name),
		Summary: summary,
		Run:     run,
	})
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were added then
	// Mode() names the one selected
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the current layer of arguments.
//
// If sub-modes have been added and the first argument after the flags names
// one of them then that sub-mode is selected and the argument consumed.
// Otherwise the default sub-mode is selected. Flags that are not recognised
// are left for the default sub-mode to parse.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.next:])
	switch {
	case errors.Is(err, flag.ErrHelp):
		hw.Help(md.Output, md.Path(), md.subModes, md.additionalHelp)
		return ParseHelp, nil

	case err != nil:
		if len(md.subModes) == 0 {
			return ParseError, curated.Errorf(BadFlags, err)
		}
		md.choose(&md.subModes[0])

	case len(md.subModes) > 0:
		md.choose(md.lookup(md.flags.Arg(0)))
	}

	return ParseContinue, nil
}

// lookup returns the sub-mode with the name, consuming the argument. Returns
// the default sub-mode if there is no sub-mode with the name.
func (md *Modes) lookup(name string) *SubMode {
	name = strings.ToUpper(name)
	for i := range md.subModes {
		if md.subModes[i].Name == name {
			md.next++
			return &md.subModes[i]
		}
	}
	return &md.subModes[0]
}

func (md *Modes) choose(m *SubMode) {
	md.chosen = m
	md.path = append(md.path, m.Name)
}

// Dispatch calls the Run function of the sub-mode selected by the most recent
// call to Parse(). The function is free to call NewMode() and Parse() for the
// next layer of arguments.
func (md *Modes) Dispatch() error {
	if md.chosen == nil {
		return curated.Errorf(NoMode)
	}
	m := *md.chosen
	if m.Run == nil {
		return curated.Errorf(NoHandler, m.Name)
	}
	return m.Run(md)
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags or a
// selected sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or selected
// sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddAddress flag for next call to Parse(). See the Address type for the
// accepted formats.
func (md *Modes) AddAddress(name string, usage string) *Address {
	a := &Address{}
	md.flags.Var(a, name, usage)
	return a
}

// AddList flag for next call to Parse(). The flag can be specified more than
// once and every value is added to the list.
func (md *Modes) AddList(name string, usage string) *List {
	l := &List{}
	md.flags.Var(l, name, usage)
	return l
}
