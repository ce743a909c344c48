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

package script

import (
	"context"
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/emu6502/emu6502/curated"
	"github.com/emu6502/emu6502/debugger"
	"github.com/emu6502/emu6502/debugger/dbgmem"
	"github.com/emu6502/emu6502/logger"
)

// Sentinel error returned by the Lua type.
const LuaError = "lua: %v"

// Lua runs Lua scripts that control the debugger.
type Lua struct {
	dbg *debugger.Debugger
	out io.Writer

	state *lua.LState

	// receives a value whenever the emulation halts
	halts <-chan struct{}
}

// NewLua is the preferred method of initialisation for the Lua type. The
// Close() function should be called when the Lua instance is no longer
// required.
func NewLua(dbg *debugger.Debugger, out io.Writer) *Lua {
	l := &Lua{
		dbg:   dbg,
		out:   out,
		state: lua.NewState(),
		halts: dbg.Governor().Halts(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"print":  l.print,
		"peek":   l.peek,
		"poke":   l.poke,
		"reg":    l.reg,
		"setreg": l.setreg,
		"step":   l.step,
		"run":    l.run,
		"pause":  l.pause,
		"wait":   l.wait,
		"brk":    l.brk,
		"watch":  l.watch,
		"clear":  l.clear,
		"list":   l.list,
		"state":  l.emulationState,
		"log":    l.log,
		"quit":   l.quit,
	} {
		l.state.SetGlobal(name, l.state.NewFunction(fn))
	}

	return l
}

// Close the Lua interpreter.
func (l *Lua) Close() {
	l.state.Close()
}

// RunFile runs the Lua script in the file. The script is stopped if the
// context is cancelled.
func (l *Lua) RunFile(ctx context.Context, filename string) error {
	l.state.SetContext(ctx)
	defer l.state.RemoveContext()
	if err := l.state.DoFile(filename); err != nil {
		return curated.Errorf(LuaError, err)
	}
	return nil
}

// RunString runs the Lua source. The script is stopped if the context is
// cancelled.
func (l *Lua) RunString(ctx context.Context, source string) error {
	l.state.SetContext(ctx)
	defer l.state.RemoveContext()
	if err := l.state.DoString(source); err != nil {
		return curated.Errorf(LuaError, err)
	}
	return nil
}

// checkAddress returns the address argument at position n of the stack.
func checkAddress(L *lua.LState, n int) uint16 {
	switch v := L.Get(n).(type) {
	case lua.LNumber:
		if v < 0 || v > 0xffff {
			L.ArgError(n, "address out of range")
		}
		return uint16(v)
	case lua.LString:
		a, err := dbgmem.ParseAddress(string(v))
		if err != nil {
			L.ArgError(n, err.Error())
		}
		return a
	}
	L.TypeError(n, lua.LTNumber)
	return 0
}

func (l *Lua) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(l.out, strings.Join(s, "\t"))
	return 0
}

func (l *Lua) peek(L *lua.LState) int {
	ai, err := l.dbg.Peek(checkAddress(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(ai.Data))
	return 1
}

func (l *Lua) poke(L *lua.LState) int {
	a := checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value out of range")
	}
	if _, err := l.dbg.Poke(a, uint8(v)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (l *Lua) reg(L *lua.LState) int {
	v, ok := l.dbg.Registers().Register(L.CheckString(1))
	if !ok {
		L.ArgError(1, "unknown register")
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (l *Lua) setreg(L *lua.LState) int {
	v := L.CheckInt(2)
	if v < 0 || v > 0xffff {
		L.ArgError(2, "value out of range")
	}
	if err := l.dbg.SetRegister(L.CheckString(1), uint16(v)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// waitHalt blocks until the emulation halts or the script's context is
// cancelled. returns the reason for the halt.
func (l *Lua) waitHalt(L *lua.LState) string {
	var done <-chan struct{}
	if ctx := L.Context(); ctx != nil {
		done = ctx.Done()
	}

	select {
	case <-l.halts:
		return l.dbg.Governor().Reason()
	case <-done:
		L.RaiseError("script cancelled")
	}
	return ""
}

func (l *Lua) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n <= 0 {
		L.ArgError(1, "step count must be positive")
	}
	if st := l.dbg.State(); st.IsTerminal() {
		L.RaiseError("emulation is %s", strings.ToLower(st.String()))
	}

	// discard any halt that has already been reported
	select {
	case <-l.halts:
	default:
	}

	l.dbg.Step(n)
	L.Push(lua.LString(l.waitHalt(L)))
	return 1
}

func (l *Lua) run(L *lua.LState) int {
	l.dbg.Run()
	return 0
}

func (l *Lua) pause(L *lua.LState) int {
	l.dbg.Pause()
	return 0
}

func (l *Lua) wait(L *lua.LState) int {
	L.Push(lua.LString(l.waitHalt(L)))
	return 1
}

func (l *Lua) brk(L *lua.LState) int {
	L.Push(lua.LBool(l.dbg.AddBreak(checkAddress(L, 1))))
	return 1
}

func (l *Lua) watch(L *lua.LState) int {
	L.Push(lua.LBool(l.dbg.AddWatch(checkAddress(L, 1))))
	return 1
}

func (l *Lua) clear(L *lua.LState) int {
	L.Push(lua.LBool(l.dbg.Clear(checkAddress(L, 1))))
	return 1
}

func (l *Lua) list(L *lua.LState) int {
	a := checkAddress(L, 1)
	n := L.OptInt(2, 1)
	t := L.NewTable()
	for _, e := range l.dbg.Disassemble(a, n) {
		t.Append(lua.LString(e.String()))
	}
	L.Push(t)
	return 1
}

func (l *Lua) emulationState(L *lua.LState) int {
	L.Push(lua.LString(strings.ToLower(l.dbg.State().String())))
	return 1
}

func (l *Lua) log(L *lua.LState) int {
	logger.Log(logger.Allow, "lua", L.CheckString(1))
	return 0
}

func (l *Lua) quit(L *lua.LState) int {
	l.dbg.Quit()
	return 0
}
