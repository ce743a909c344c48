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

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/emu6502/emu6502/debugger"
	"github.com/emu6502/emu6502/debugger/govern"
	"github.com/emu6502/emu6502/debugger/script"
	"github.com/emu6502/emu6502/debugger/server"
	"github.com/emu6502/emu6502/debugger/terminal"
	"github.com/emu6502/emu6502/debugger/terminal/colorterm"
	"github.com/emu6502/emu6502/debugger/terminal/easyterm"
	"github.com/emu6502/emu6502/debugger/terminal/plainterm"
	"github.com/emu6502/emu6502/disassembly"
	"github.com/emu6502/emu6502/gui"
	ebitengui "github.com/emu6502/emu6502/gui/ebiten"
	sdlgui "github.com/emu6502/emu6502/gui/sdl"
	"github.com/emu6502/emu6502/hardware"
	"github.com/emu6502/emu6502/hardware/memory"
	"github.com/emu6502/emu6502/hardware/memory/devices"
	"github.com/emu6502/emu6502/logger"
	"github.com/emu6502/emu6502/modalflag"
	"github.com/emu6502/emu6502/paths"
	"github.com/emu6502/emu6502/setup"
	"github.com/emu6502/emu6502/statsview"
	"github.com/emu6502/emu6502/version"
)

// the load address of a binary file when one is not given on the command
// line. this is where Easy6502 programs are assembled
const defaultBase = 0x0600

// display libraries require that window creation and event handling happen
// on the main thread
func init() {
	runtime.LockOSThread()
}

// communication between the main() function and the launch() function.
type mainSync struct {
	creator chan func() (gui.GUI, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan gui.GUI
	creationError chan error

	// the main thread should end as soon as possible with the exit value
	quit chan int

	// called on an interrupt signal
	crit        sync.Mutex
	onInterrupt func()
}

// setInterrupt replaces the function called on an interrupt signal. The
// previous function is returned.
func (ms *mainSync) setInterrupt(f func()) func() {
	ms.crit.Lock()
	defer ms.crit.Unlock()
	prev := ms.onInterrupt
	ms.onInterrupt = f
	return prev
}

func (ms *mainSync) interrupt() {
	ms.crit.Lock()
	f := ms.onInterrupt
	ms.crit.Unlock()
	if f != nil {
		f()
	}
}

// #mainthread
func main() {
	ms := &mainSync{
		creator:       make(chan func() (gui.GUI, error)),
		creation:      make(chan gui.GUI),
		creationError: make(chan error),
		quit:          make(chan int),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// the first interrupt cancels the emulation. a second interrupt exits
	// immediately
	var interrupted bool
	ms.setInterrupt(func() {
		if interrupted {
			fmt.Print("\r\n")
			os.Exit(1)
		}
		interrupted = true
		cancel()
	})

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		for range intChan {
			ms.interrupt()
		}
	}()

	go launch(ctx, ms, os.Args[1:])

	// a closed channel while there is a gui to service. nil otherwise
	serviceReady := make(chan struct{})
	close(serviceReady)
	var service chan struct{}

	exitVal := 0
	done := false
	var g gui.GUI
	for !done {
		select {
		case creator := <-ms.creator:
			if g != nil {
				g.Destroy(os.Stderr)
				g = nil
				service = nil
			}

			ng, err := creator()
			if err != nil {
				ms.creationError <- err
				continue
			}
			g = ng
			ms.creation <- g

			// a runner takes over the main thread until the window is closed
			// or the emulation tells it to stop
			if r, ok := g.(gui.Runner); ok {
				if err := r.Run(); err != nil {
					logger.Log(logger.Allow, "main", err)
				}
				g.Destroy(os.Stderr)
				g = nil
				continue
			}
			service = serviceReady

		case exitVal = <-ms.quit:
			done = true

		case <-service:
			g.Service()
		}
	}

	if g != nil {
		g.Destroy(os.Stderr)
	}

	cancel()
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// request gui creation and to quit.
func launch(ctx context.Context, ms *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubMode("RUN", "run a machine", func(md *modalflag.Modes) error {
		return run(ctx, md, ms)
	})
	md.AddSubMode("DISASM", "disassemble a binary file", func(md *modalflag.Modes) error {
		return disasm(md, os.Stdout)
	})
	showVersion := md.AddBool("version", false, "print the version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		ms.quit <- 0
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		ms.quit <- 10
		return
	}

	if *showVersion {
		fmt.Println(version.Banner())
		ms.quit <- 0
		return
	}

	if err := md.Dispatch(); err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		ms.quit <- 20
		return
	}

	ms.quit <- 0
}

func baseAddress(a *modalflag.Address) uint16 {
	if a.Given {
		return a.Value
	}
	return defaultBase
}

func run(ctx context.Context, md *modalflag.Modes, ms *mainSync) error {
	md.NewMode()
	md.AdditionalHelp(fmt.Sprintf("device types: %s", strings.Join(setup.Types(), ", ")))

	configFile := md.AddString("config", "", "machine description. a JSON file or the name of a machine in the resource path")
	romFile := md.AddString("rom", "", "binary file to load at the base address")
	base := md.AddAddress("base", fmt.Sprintf("load address of the binary file (default $%04x)", defaultBase))
	start := md.AddAddress("start", "start address. takes precedence over the machine description")
	port := md.AddInt("debugger", 0, "run the remote debugger on the port. zero disables the remote debugger")
	display := md.AddString("display", "", "display type: none, sdl, ebiten (default from the machine description)")
	monitor := md.AddBool("monitor", false, "run the interactive monitor")
	scriptFile := md.AddString("script", "", "script to run. files with the .lua extension are run as Lua, anything else is played back to the monitor")
	traceFile := md.AddString("trace", "", "write every executed instruction to the file")
	dumpFile := md.AddString("dump", "", "write the contents of memory to the file when the emulation ends")
	stats := md.AddBool("statsview", false, "run the runtime statistics server")
	echo := md.AddBool("echo", false, "echo the log to stdout")
	overrides := md.AddList("set", "change the machine description with type.instance.member=value. can be repeated")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *echo {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		if *romFile != "" {
			return fmt.Errorf("binary file given twice")
		}
		*romFile = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cfg, dir, err := machineConfig(*configFile, *romFile, baseAddress(base))
	if err != nil {
		return err
	}

	for _, s := range *overrides {
		o, err := setup.ParseOverride(s)
		if err != nil {
			return err
		}
		if err := cfg.Apply(o); err != nil {
			return err
		}
	}

	if *display != "" {
		cfg.DisplayType = *display
	}

	lua := strings.EqualFold(filepath.Ext(*scriptFile), ".lua")
	playback := *scriptFile != "" && !lua
	debugging := *port > 0 || *monitor || *scriptFile != ""

	opts := hardware.Options{
		Mode:         govern.ModeRun,
		StartAddress: start.Value,
		HasStart:     start.Given,
		Dir:          dir,
		Headless:     isHeadless(cfg.DisplayType),
	}
	if debugging {
		opts.Mode = govern.ModeDebugger
	}

	m, err := hardware.NewMachine(cfg, opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(ctx, os.Stdout)
	}

	if *traceFile != "" {
		f, err := os.Create(*traceFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w := bufio.NewWriter(f)
		defer w.Flush()
		m.Trace(w)
	}

	if err := createGUI(cfg.DisplayType, m, ms); err != nil {
		return err
	}

	var dbg *debugger.Debugger
	if debugging {
		dbg = debugger.NewDebugger(m.CPU, m.Mem, m.Gov)
	}

	if *port > 0 {
		srv, err := server.NewServer(dbg, *port)
		if err != nil {
			return err
		}
		go func() {
			if err := srv.Serve(ctx); err != nil {
				logger.Log(logger.Allow, "main", err)
			}
		}()
	}

	done := make(chan error, 1)
	go func() {
		done <- m.Run(ctx)
	}()

	if lua {
		l := script.NewLua(dbg, os.Stdout)
		err := l.RunFile(ctx, *scriptFile)
		l.Close()
		if err != nil {
			fmt.Printf("* %v\n", err)
		}
	}

	switch {
	case *monitor || playback:
		var term terminal.Terminal = newTerminal()
		if playback {
			term, err = script.NewPlayback(term, *scriptFile)
			if err != nil {
				dbg.Quit()
				<-done
				return err
			}
		}

		// an interrupt pauses a running emulation rather than ending it
		prev := ms.setInterrupt(func() {
			if dbg.State() == govern.Running {
				dbg.Pause()
				return
			}
			cancel()
		})
		err = terminal.NewMonitor(dbg, term, cfg.Name).Run(ctx)
		ms.setInterrupt(prev)
		if err != nil {
			logger.Log(logger.Allow, "main", err)
		}
		dbg.Quit()

	case lua && *port == 0:
		dbg.Quit()

	case debugging:
		// the remote debugger can still inspect the machine after the CPU
		// has halted
		m.Gov.Wait(ctx)
	}

	err = <-done

	if *dumpFile != "" {
		if derr := dump(m, *dumpFile); derr != nil {
			return derr
		}
		fmt.Printf("memory dumped to %s\n", *dumpFile)
	}

	return err
}

// machineConfig returns the machine description and the directory that
// filenames in the description are relative to. If there is no machine
// description then a default machine is created for the binary file.
func machineConfig(configFile string, romFile string, base uint16) (*setup.Config, string, error) {
	if configFile == "" {
		if romFile == "" {
			return nil, "", fmt.Errorf("a machine description or a binary file is required")
		}
		cfg, err := defaultConfig(romFile, base)
		return cfg, "", err
	}

	cfg, err := setup.Load(configFile)
	if err != nil {
		return nil, "", err
	}

	dir := filepath.Dir(configFile)
	if _, err := os.Stat(configFile); err != nil {
		if pth, err := paths.ResourcePath(setup.MachinesSubDir); err == nil {
			dir = pth
		}
	}

	// a binary file on the command line replaces the program in the machine
	// description
	if romFile != "" {
		abs, err := filepath.Abs(romFile)
		if err != nil {
			return nil, "", err
		}
		err = applyOverrides(cfg,
			fmt.Sprintf("ROM.program.romFilename=%s", abs),
			fmt.Sprintf("ROM.program.startAddress=%#04x", base),
		)
		if err != nil {
			return nil, "", err
		}
	}

	return cfg, dir, nil
}

// defaultConfig describes a machine with RAM below the base address and the
// binary file as a ROM at the base address. Execution starts at the base
// address.
func defaultConfig(romFile string, base uint16) (*setup.Config, error) {
	cfg := setup.NewConfig(strings.TrimSuffix(filepath.Base(romFile), filepath.Ext(romFile)))

	var o []string
	if base > 0 {
		o = append(o,
			"RAM.ram.startAddress=0",
			fmt.Sprintf("RAM.ram.size=%d", base),
		)
	}
	o = append(o,
		fmt.Sprintf("ROM.program.romFilename=%s", romFile),
		fmt.Sprintf("ROM.program.startAddress=%#04x", base),
		fmt.Sprintf("config.main.startAddress=%#04x", base),
	)

	if err := applyOverrides(cfg, o...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyOverrides(cfg *setup.Config, overrides ...string) error {
	for _, s := range overrides {
		o, err := setup.ParseOverride(s)
		if err != nil {
			return err
		}
		if err := cfg.Apply(o); err != nil {
			return err
		}
	}
	return nil
}

func isHeadless(displayType string) bool {
	switch strings.ToLower(displayType) {
	case "", "none":
		return true
	}
	return false
}

// createGUI asks the main thread to create the display and waits for the
// result.
func createGUI(displayType string, m *hardware.Machine, ms *mainSync) error {
	var creator func() (gui.GUI, error)

	switch strings.ToLower(displayType) {
	case "", "none":
		return nil
	case "sdl":
		creator = func() (gui.GUI, error) {
			return sdlgui.NewGUI(m.Queue, m.Events)
		}
	case "ebiten":
		creator = func() (gui.GUI, error) {
			return ebitengui.NewGUI(m.Queue, m.Events)
		}
	default:
		return fmt.Errorf("unknown display type: %s", displayType)
	}

	ms.creator <- creator

	select {
	case <-ms.creation:
		return nil
	case err := <-ms.creationError:
		return err
	}
}

// newTerminal returns a color terminal if both stdin and stdout are
// terminals.
func newTerminal() terminal.Terminal {
	if easyterm.IsTerminal(os.Stdin) && easyterm.IsTerminal(os.Stdout) {
		return colorterm.NewColorTerminal(os.Stdin, os.Stdout)
	}
	return plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
}

func dump(m *hardware.Machine, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := m.Dump(w); err != nil {
		return err
	}
	return w.Flush()
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	base := md.AddAddress("base", fmt.Sprintf("load address of the binary file (default $%04x)", defaultBase))
	start := md.AddAddress("start", "address of the first instruction (default is the load address)")
	count := md.AddInt("count", 0, "number of instructions. zero disassembles to the end of the file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one binary file required for %s mode", md)
	}

	rom, err := devices.LoadROM("program", baseAddress(base), md.GetArg(0))
	if err != nil {
		return err
	}

	mem := memory.NewController(nil)
	if err := mem.Register(rom); err != nil {
		return err
	}

	from := rom.Origin()
	if start.Given {
		from = start.Value
	}

	dsm := disassembly.NewDisassembly(mem)
	if *count > 0 {
		_, err := io.WriteString(output, dsm.Listing(from, *count))
		return err
	}
	return dsm.Write(output, from, rom.Memtop())
}
