package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-hanoi/internal/config"
	"github.com/IlikeChooros/go-hanoi/internal/tui"
	"github.com/IlikeChooros/go-hanoi/pkg/game"
	"github.com/IlikeChooros/go-hanoi/pkg/hanoi"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	disks := flag.Int("disks", hanoi.DefaultDisks, "number of disks")
	pegs := flag.Int("pegs", hanoi.DefaultPegs, "number of pegs")
	fps := flag.Int("fps", game.DefaultFPS, "frames per second")
	autoplayMs := flag.Int("autoplay-ms", 1000*game.DefaultTicksPerMove/game.DefaultFPS, "milliseconds between autoplay moves")
	position := flag.String("position", "", "start position, pegs separated by '|' with disks listed bottom to top, e.g. 3,2|1|")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	logFile := flag.String("log-file", "", "log file, logs are discarded when empty")
	configPath := flag.String("config", "", "config file (default $HANOI_CONFIG or ~/.go-hanoi/config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	// flags given on the command line win over the config file
	hc := cfg.Hanoi
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "disks":
			hc.Disks = *disks
		case "pegs":
			hc.Pegs = *pegs
		case "fps":
			hc.FPS = *fps
		case "autoplay-ms":
			hc.AutoplayMs = *autoplayMs
		case "position":
			hc.Position = *position
		case "log-level":
			hc.LogLevel = *levelStr
		case "log-file":
			hc.LogFile = *logFile
		}
	})

	logger, closeLog, err := newLogger(hc.LogLevel, hc.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	opts, err := controllerOptions(hc)
	if err != nil {
		return err
	}
	opts = append(opts, game.WithLogger(logger))
	controller := game.NewController(opts...)

	// the terminal belongs to bubbletea, detect its colours up front
	output := termenv.NewOutput(os.Stdout)
	renderer := lipgloss.NewRenderer(os.Stdout)
	renderer.SetColorProfile(output.EnvColorProfile())

	zones := zone.New()
	defer zones.Close()

	model := tui.New(controller,
		tui.WithFPS(hc.FPS),
		tui.WithRenderer(renderer),
		tui.WithZones(zones),
		tui.WithContext(context.Background()),
	)

	logger.Info("starting", "disks", hc.Disks, "pegs", hc.Pegs, "fps", hc.FPS, "position", hc.Position)
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		snap := m.Controller().Snapshot()
		logger.Info("exiting", "moves", snap.Moves, "won", snap.Won)
		if snap.Won {
			fmt.Printf("Solved in %d moves\n", snap.Moves)
		}
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func controllerOptions(hc config.HanoiConfig) ([]game.Option, error) {
	if hc.FPS < 1 {
		return nil, fmt.Errorf("fps must be positive, got %d", hc.FPS)
	}
	if hc.AutoplayMs < 1 {
		return nil, fmt.Errorf("autoplay-ms must be positive, got %d", hc.AutoplayMs)
	}
	opts := []game.Option{game.WithTicksPerMove(hc.AutoplayMs * hc.FPS / 1000)}

	if hc.Position != "" {
		board, err := hanoi.ParseBoard(hc.Position)
		if err != nil {
			return nil, fmt.Errorf("parsing position: %w", err)
		}
		return append(opts, game.WithBoard(board)), nil
	}

	if hc.Disks < 1 || hc.Disks > hanoi.MaxDisks || hc.Pegs < 1 || hc.Pegs > hanoi.MaxPegs {
		return nil, fmt.Errorf("%w: disks=%d pegs=%d", hanoi.ErrDimensions, hc.Disks, hc.Pegs)
	}
	return append(opts, game.WithPegs(hc.Pegs), game.WithDisks(hc.Disks)), nil
}

func newLogger(levelStr, path string) (*slog.Logger, func() error, error) {
	level, err := config.ParseLevel(levelStr)
	if err != nil {
		return nil, nil, err
	}

	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})), file.Close, nil
}
