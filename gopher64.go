// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/gopher64/gopher64/archivefs"
	"github.com/gopher64/gopher64/cues"
	"github.com/gopher64/gopher64/environment"
	"github.com/gopher64/gopher64/hardware"
	"github.com/gopher64/gopher64/hardware/controller"
	"github.com/gopher64/gopher64/hardware/controller/paks"
	"github.com/gopher64/gopher64/hardware/controller/vru"
	"github.com/gopher64/gopher64/hardware/gbcart"
	"github.com/gopher64/gopher64/hardware/savestate"
	"github.com/gopher64/gopher64/logger"
	"github.com/gopher64/gopher64/macro"
	"github.com/gopher64/gopher64/modalflag"
	"github.com/gopher64/gopher64/notifications"
	"github.com/gopher64/gopher64/prefs"
	"github.com/gopher64/gopher64/statsview"
	"github.com/gopher64/gopher64/ui/terminal"
	"github.com/gopher64/gopher64/version"
)

// the number of times per second that the controllers are polled in RUN mode
const pollRate = 60

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "SCRIPT", "FORMAT", "CUES", "STATE")
	showVersion := md.AddBool("version", false, "print the version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *showVersion {
		v, r := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)

	case "SCRIPT":
		err = script(ctx, md)

	case "FORMAT":
		err = format(md)

	case "CUES":
		err = exportCues(md)

	case "STATE":
		err = state(md)
	}

	stop()

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// emulationFlags are the flags shared by the modes that create an emulation
type emulationFlags struct {
	log       *bool
	gb        *string
	statsview *bool
}

func addEmulationFlags(md *modalflag.Modes) emulationFlags {
	md.AddPrefs()
	f := emulationFlags{
		log: md.AddBool("log", false, "echo debugging log to stdout"),
		gb:  md.AddString("gb", "", "Game Boy ROM for the transfer paks"),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

// newEmulation creates the environment and N64 for the ROM file. The ui is
// created once the environment exists.
func newEmulation(f emulationFlags, romFile string, ui func(*environment.Environment) (controller.UI, error)) (*hardware.N64, error) {
	if *f.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}

	// command line preferences that have not been used by the environment
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "gopher64", "unknown preferences: %s", unused)
	}

	if f.statsview != nil && *f.statsview {
		statsview.Launch(env)
	}

	rom, err := archivefs.ReadFile(romFile, ".z64", ".n64", ".v64")
	if err != nil {
		return nil, err
	}

	var gb paks.GBCartridge
	if *f.gb != "" {
		d, err := archivefs.ReadFile(*f.gb, ".gb", ".gbc")
		if err != nil {
			return nil, err
		}
		c, err := gbcart.NewCartridge(d)
		if err != nil {
			return nil, err
		}
		logger.Logf(env, "gopher64", "game boy cartridge: %v", c)
		gb = c
	}

	u, err := ui(env)
	if err != nil {
		return nil, err
	}

	n, err := hardware.NewN64(env, rom, u, gb)
	if err != nil {
		return nil, err
	}
	logger.Logf(env, "gopher64", "%v", n)

	return n, nil
}

// newPlayer returns nil if the audio device is not available. cues are not
// required for the emulation to run
func newPlayer(env *environment.Environment) *cues.Player {
	p, err := cues.NewPlayer(env, cues.NewCues(env))
	if err != nil {
		logger.Log(env, "gopher64", err)
		return nil
	}
	return p
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	f := addEmulationFlags(md)
	scriptFile := md.AddString("script", "", "Lua script to run before polling the controllers")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one N64 ROM required for %s mode", md)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("%s mode requires a terminal", md)
	}

	var ui *terminal.UI
	var player *cues.Player
	var mcr *macro.Macro

	n, err := newEmulation(f, md.GetArg(0), func(env *environment.Environment) (controller.UI, error) {
		player = newPlayer(env)
		var notify notifications.Notify
		if player != nil {
			notify = player
		}
		ui = terminal.NewUI(os.Stdout, notify)

		if *scriptFile == "" {
			return ui, nil
		}
		mcr, err = macro.NewMacro(env, *scriptFile, ui)
		return mcr, err
	})
	if err != nil {
		return err
	}
	if player != nil {
		defer player.Close()
	}

	t, err := terminal.NewTerminal(os.Stdin, os.Stdout, ui)
	if err != nil {
		return err
	}
	defer t.CleanUp()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		return t.Service(ctx)
	})

	if n.VRU != nil || mcr != nil {
		w := vru.NewWindow()
		if mcr != nil {
			mcr.AttachWindow(w)
		} else {
			n.VRU.AttachWindow(w)
		}
		g.Go(func() error {
			defer w.Close()
			return ui.ServiceWindow(ctx, w)
		})
	}

	g.Go(func() error {
		if mcr != nil {
			if err := mcr.Run(ctx, n); err != nil {
				return err
			}
		}
		return poll(ctx, n, ui)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	return errors.Join(err, n.Flush())
}

// poll the controllers until the context is cancelled
func poll(ctx context.Context, n *hardware.N64, ui *terminal.UI) error {
	ticker := time.NewTicker(time.Second / pollRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		buttons, ok, err := n.PollControllers()
		if err != nil {
			return err
		}
		for i := range buttons {
			if ok[i] {
				ui.Polled(i, buttons[i])
			}
		}

		if err := n.Step(n.CyclesPerSecond() / pollRate); err != nil {
			return err
		}
	}
}

func script(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	f := addEmulationFlags(md)
	stateFile := md.AddString("state", "", "write the machine state to file when the script ends")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("a Lua script and an N64 ROM are required for %s mode", md)
	}

	var mcr *macro.Macro
	n, err := newEmulation(f, md.GetArg(1), func(env *environment.Environment) (controller.UI, error) {
		mcr, err = macro.NewMacro(env, md.GetArg(0), nil)
		return mcr, err
	})
	if err != nil {
		return err
	}

	err = mcr.Run(ctx, n)

	if *stateFile != "" {
		err = errors.Join(err, os.WriteFile(*stateFile, n.Snapshot(), 0o644))
	}

	return errors.Join(err, n.Flush())
}

func format(md *modalflag.Modes) error {
	md.NewMode()
	force := md.AddBool("force", false, "overwrite existing file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one controller pak file required for %s mode", md)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !*force {
		flags |= os.O_EXCL
	}

	fn := md.GetArg(0)
	fd, err := os.OpenFile(fn, flags, 0o644)
	if err != nil {
		return err
	}

	data := make([]uint8, paks.MemPakSize)
	paks.FormatMemPak(data)
	if _, err := fd.Write(data); err != nil {
		fd.Close()
		return err
	}
	if err := fd.Close(); err != nil {
		return err
	}

	fmt.Printf("formatted controller pak written to %s\n", fn)
	return nil
}

func exportCues(md *modalflag.Modes) error {
	md.NewMode()
	md.AddPrefs()
	play := md.AddBool("play", false, "play the cues as well as exporting them")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one output directory required for %s mode", md)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return err
	}
	prefs.PopCommandLineStack()

	dir := md.GetArg(0)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	cs := cues.NewCues(env)

	var player *cues.Player
	if *play {
		player, err = cues.NewPlayer(env, cs)
		if err != nil {
			return err
		}
		defer player.Close()
	}

	for _, notice := range cues.Notices() {
		c := cs.Get(notice)
		if c == nil {
			continue
		}

		fn := filepath.Join(dir, fmt.Sprintf("%s.wav", notice))
		fd, err := os.Create(fn)
		if err != nil {
			return err
		}
		if err := c.WriteWAV(fd); err != nil {
			fd.Close()
			return err
		}
		if err := fd.Close(); err != nil {
			return err
		}
		fmt.Printf("%s: %.2fs\n", fn, c.Duration())

		if player != nil {
			if err := player.Notify(notice); err != nil {
				return err
			}
			time.Sleep(time.Duration(c.Duration()*float64(time.Second)) + time.Second/4)
		}
	}

	return nil
}

func state(md *modalflag.Modes) error {
	md.NewMode()
	dot := md.AddBool("dot", false, "write the state as a graphviz graph")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one state file required for %s mode", md)
	}

	d, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	s, err := savestate.Unmarshal(d)
	if err != nil {
		return err
	}

	if *dot {
		memviz.Map(os.Stdout, s)
		return nil
	}

	fmt.Print(s)
	return nil
}
