// Command marquee scrolls text across the terminal.
//
//	marquee [flags] [text...]
//
// Text comes from the arguments, or from -file, which is watched and reloaded
// whenever it changes.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/marquee"
	"github.com/phanxgames/marquee/term"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("marquee", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "JSON config file")
		file       = fs.String("file", "", "read text from file and reload it on change")
		scriptPath = fs.String("script", "", "JSON script of timed engine commands")
		speed      = fs.Float64("speed", 12, "speed in cells per second")
		factor     = fs.Float64("factor", 1, "signed speed factor (negative scrolls right)")
		paused     = fs.Bool("paused", false, "start paused")
		reduced    = fs.Bool("reduced-motion", marquee.PrefersReducedMotion(), "do not animate")
		fps        = fs.Int("fps", 30, "frames per second")
		sep        = fs.String("sep", "", "separator between copies")
		status     = fs.Bool("status", true, "show the status line")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := marquee.DefaultConfig()
	if *configPath != "" {
		loaded, err := marquee.LoadConfigFile(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		// Terminal cells are much coarser than pixels.
		cfg.Speed = *speed
	}
	// Explicit flags override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "speed":
			cfg.Speed = *speed
		case "factor":
			cfg.SpeedFactor = *factor
		case "paused":
			cfg.Autoplay = !*paused
		case "reduced-motion":
			cfg.ReducedMotion = *reduced
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	text := strings.Join(fs.Args(), " ")
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("read text: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text to scroll (pass arguments or -file)")
	}

	var script *marquee.Script
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if script, err = marquee.LoadScript(data); err != nil {
			return err
		}
	}

	model := term.New(text, term.Options{
		Config:     cfg,
		FPS:        *fps,
		Separator:  *sep,
		ShowStatus: *status,
		Script:     script,
	})
	p := tea.NewProgram(model)

	if *file != "" {
		stop, err := watchFile(*file, p.Send)
		if err != nil {
			return err
		}
		defer stop()
	}

	_, err := p.Run()
	return err
}

// watchFile sends a term.ContentMsg each time path is written. The directory
// is watched rather than the file so editors that replace the file on save
// keep working.
func watchFile(path string, send func(tea.Msg)) (func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				data, err := os.ReadFile(abs)
				if err != nil {
					continue
				}
				send(term.ContentMsg{Text: string(data)})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "marquee: watch: %v\n", err)
			}
		}
	}()
	return func() {
		w.Close()
		<-done
	}, nil
}
