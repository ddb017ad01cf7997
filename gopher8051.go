// This file is part of Gopher8051.
//
// Gopher8051 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8051 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8051.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gopher8051/gopher8051/debugger"
	"github.com/gopher8051/gopher8051/debugger/govern"
	"github.com/gopher8051/gopher8051/debugger/terminal"
	"github.com/gopher8051/gopher8051/debugger/terminal/easyterm"
	"github.com/gopher8051/gopher8051/debugger/terminal/plainterm"
	"github.com/gopher8051/gopher8051/debugger/terminal/tcellterm"
	"github.com/gopher8051/gopher8051/hardware/clocks"
	"github.com/gopher8051/gopher8051/hardware/engine"
	"github.com/gopher8051/gopher8051/hardware/engine/freerun"
	"github.com/gopher8051/gopher8051/loader"
	"github.com/gopher8051/gopher8051/logger"
	"github.com/gopher8051/gopher8051/modalflag"
	"github.com/gopher8051/gopher8051/paths"
	"github.com/gopher8051/gopher8051/performance"
	"github.com/gopher8051/gopher8051/performance/limiter"
	"github.com/gopher8051/gopher8051/porttrace"
	"github.com/gopher8051/gopher8051/prefs"
	"github.com/gopher8051/gopher8051/statsview"
	"github.com/gopher8051/gopher8051/version"
)

// flags that disable an exception. the first name is the preferred form
var noExceptions = []struct {
	cause engine.Cause
	name  string
	alias string
}{
	{engine.CauseIretSP, "noexc_iret_sp", "nosp"},
	{engine.CauseIretACC, "noexc_iret_acc", "noacc"},
	{engine.CauseIretPSW, "noexc_iret_psw", "nopsw"},
	{engine.CauseAccToA, "noexc_acc_to_a", "noaa"},
	{engine.CauseStack, "noexc_stack", "nostk"},
	{engine.CauseIllegalOpcode, "noexc_invalid_op", "noiop"},
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch returns the exit status of the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "SCRIPT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	case "SCRIPT":
		err = runScript(md, output)
	case "VERSION":
		v, r := version.Version()
		fmt.Fprintf(output, "%s %s\n%s\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// load the program named on the command line, if there is one
func load(md *modalflag.Modes, raw bool) (loader.Loader, bool, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return loader.Loader{}, false, nil
	case 1:
		return loader.NewLoader(md.GetArg(0), raw), true, nil
	}
	return loader.Loader{}, false, fmt.Errorf("too many arguments for %s mode", md)
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	raw := md.AddBool("raw", false, "program is a raw binary rather than an Intel HEX file")
	stepInstruction := md.AddBool("si", false, "step whole instructions rather than machine cycles", "step_instruction")
	lowLow := md.AddBool("iolowlow", false, "if the output latch is low then input from the same pin is low")
	lowRand := md.AddBool("iolowrand", false, "if the output latch is low then input from the same pin is random")
	clock := md.AddInt("clock", 0, "oscillator frequency in Hz (default from preferences)")
	speed := md.AddInt("speed", -1, "initial speed 0 (fastest) to 7 (slowest)")
	trace := md.AddString("trace", "", "record port output latches to WAV file (AUTO for a generated filename)")
	termType := md.AddString("term", "COLOR", "terminal type: COLOR, TCELL, PLAIN")
	log := md.AddBool("log", false, "write log to stderr on exit")
	stats := md.AddBool("statsview", false, "run statsview server")
	prefsFile := md.AddString("prefsfile", "", "location of the preferences file")
	prefsArg := md.AddString("prefs", "", "preferences for this session (key::value; key::value)")

	noexc := make(map[engine.Cause]*bool)
	for _, e := range noExceptions {
		noexc[e.cause] = md.AddBool(e.name, false, fmt.Sprintf("disable %s exception", e.cause.Key()), e.alias)
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		defer logger.Write(logger.NewColorizer(os.Stderr))
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "! statsview not available in this build")
		}
	}

	// flags are applied through the preferences system. values from the
	// -prefs flag take lower priority
	cl := []string{*prefsArg}
	if *stepInstruction {
		cl = append(cl, "emulation.stepInstruction::true")
	}
	if *lowLow {
		cl = append(cl, "ports.fidelity::low")
	}
	if *lowRand {
		cl = append(cl, "ports.fidelity::random")
	}
	if *clock != 0 {
		cl = append(cl, fmt.Sprintf("emulation.clock::%d", *clock))
	}
	if *speed >= 0 {
		cl = append(cl, fmt.Sprintf("emulation.speed::%d", *speed))
	}
	for cause, b := range noexc {
		if *b {
			cl = append(cl, fmt.Sprintf("exceptions.%s::false", cause.Key()))
		}
	}
	prefs.PushCommandLineStack(strings.Join(cl, "; "))
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
	}()

	ld, ok, err := load(md, *raw)
	if err != nil {
		return err
	}

	var op terminal.Operator
	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		op = plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
	case "COLOR":
		et, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
		if err != nil {
			logger.Log(logger.Allow, "gopher8051", err)
			op = plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
		} else {
			op = et
		}
	case "TCELL":
		tt, err := tcellterm.NewTerminal()
		if err != nil {
			logger.Log(logger.Allow, "gopher8051", err)
			op = plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
		} else {
			op = tt
		}
	}

	dbg, err := debugger.NewDebugger(op, freerun.NewFreerun(), limiter.NewMonotonic(), *prefsFile)
	if err != nil {
		return err
	}

	if ok {
		if err := dbg.Load(ld); err != nil {
			return err
		}
	}

	if *trace != "" {
		fn := *trace
		if strings.ToUpper(fn) == "AUTO" {
			fn = paths.UniqueFilename("porttrace", ld.Filename) + ".wav"
		}
		rec, err := porttrace.NewRecorder(fn, dbg.Ports, dbg.Scheduler.ClockHz())
		if err != nil {
			return err
		}
		dbg.Scheduler.AddObserver(rec)
		defer func() {
			if err := rec.End(); err != nil {
				fmt.Fprintf(output, "* %v\n", err)
			}
		}()
	}

	return dbg.Start()
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	raw := md.AddBool("raw", false, "program is a raw binary rather than an Intel HEX file")
	clock := md.AddInt("clock", clocks.DefaultHz, "oscillator frequency in Hz")
	speed := md.AddInt("speed", int(govern.SpeedFastest), "speed 0 (fastest) to 7 (slowest)")
	duration := md.AddString("duration", "5s", "run duration (eg. 5s, 1m)")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, MEMVIZ or ALL")
	log := md.AddBool("log", false, "write log to stderr on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		defer logger.Write(logger.NewColorizer(os.Stderr))
	}

	if *clock <= 0 {
		return fmt.Errorf("invalid clock frequency (%d)", *clock)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	eng := freerun.NewFreerun()

	ld, ok, err := load(md, *raw)
	if err != nil {
		return err
	}
	if ok {
		if _, err := ld.Attach(eng.State().Code[:]); err != nil {
			return err
		}
	}

	return performance.Check(output, prf, eng, govern.ClampSpeed(*speed), *clock, *duration)
}

func runScript(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	raw := md.AddBool("raw", false, "program is a raw binary rather than an Intel HEX file")
	clock := md.AddInt("clock", 0, "oscillator frequency in Hz (default from preferences)")
	log := md.AddBool("log", false, "write log to stderr on exit")
	prefsFile := md.AddString("prefsfile", "", "location of the preferences file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		defer logger.Write(logger.NewColorizer(os.Stderr))
	}

	args := md.RemainingArgs()
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%s mode requires a script and optionally a program", md)
	}

	if *clock != 0 {
		prefs.PushCommandLineStack(fmt.Sprintf("emulation.clock::%d", *clock))
		defer prefs.PopCommandLineStack()
	}

	// the operator is never consulted while the script is running
	op := plainterm.NewPlainTerminal(os.Stdin, output)

	dbg, err := debugger.NewDebugger(op, freerun.NewFreerun(), limiter.NewMonotonic(), *prefsFile)
	if err != nil {
		return err
	}

	if len(args) == 2 {
		if err := dbg.Load(loader.NewLoader(args[1], *raw)); err != nil {
			return err
		}
	}

	return dbg.RunScript(args[0], output)
}
