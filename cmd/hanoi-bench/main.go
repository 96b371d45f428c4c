package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-hanoi/internal/config"
	"github.com/IlikeChooros/go-hanoi/pkg/bench"
	"github.com/IlikeChooros/go-hanoi/pkg/hanoi"
	"github.com/IlikeChooros/go-hanoi/pkg/solver"
)

/*
Scramble benchmark: every worker plays random legal moves from the initial
board, solves the scrambled position and replays the solution to check it.
Prints a summary when all positions are done, or on Ctrl+C.
*/

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	positions := flag.Int("positions", 100, "number of scrambled positions")
	workers := flag.Int("workers", 4, "number of worker goroutines")
	scramble := flag.Int("scramble", 64, "random moves per scramble")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	disks := flag.Int("disks", hanoi.DefaultDisks, "number of disks")
	pegs := flag.Int("pegs", hanoi.DefaultPegs, "number of pegs")
	movetime := flag.Int("movetime", -1, "per position time limit in milliseconds, -1 for none")
	asJSON := flag.Bool("json", false, "print the summary as JSON")
	levelStr := flag.String("log-level", "warn", "debug|info|warn|error")
	configPath := flag.String("config", "", "config file (default $HANOI_CONFIG or ~/.go-hanoi/config)")
	flag.Parse()

	level, err := config.ParseLevel(*levelStr)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var cfg *config.Config
	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	bc := cfg.Bench
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "positions":
			bc.Positions = *positions
		case "workers":
			bc.Workers = *workers
		case "scramble":
			bc.Scramble = *scramble
		case "seed":
			bc.Seed = *seed
		case "disks":
			bc.Disks = *disks
		case "pegs":
			bc.Pegs = *pegs
		case "movetime":
			bc.Movetime = *movetime
		case "json":
			bc.JSON = *asJSON
		}
	})

	if bc.Disks < 1 || bc.Disks > hanoi.MaxDisks || bc.Pegs < 1 || bc.Pegs > hanoi.MaxPegs {
		return fmt.Errorf("%w: disks=%d pegs=%d", hanoi.ErrDimensions, bc.Disks, bc.Pegs)
	}
	if bc.Movetime == 0 || bc.Movetime < -1 {
		return fmt.Errorf("movetime must be positive or -1, got %d", bc.Movetime)
	}
	if bc.Positions < 1 || bc.Workers < 1 || bc.Scramble < 0 {
		return fmt.Errorf("positions and workers must be positive, scramble non-negative")
	}

	limits := solver.DefaultLimits()
	if bc.Movetime > 0 {
		limits.SetMovetime(bc.Movetime)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	arena := bench.NewArena(bc.Disks, bc.Pegs).WithContext(ctx)
	arena.Scramble = bc.Scramble
	if bc.Seed != 0 {
		arena.Seed = bc.Seed
	}
	arena.Setup(limits, uint(bc.Positions), uint(bc.Workers))

	out := termenv.NewOutput(os.Stdout)
	logger.Info("starting arena",
		"positions", bc.Positions,
		"workers", bc.Workers,
		"scramble", bc.Scramble,
		"seed", arena.Seed,
		"limits", limits.String(),
	)

	var listener bench.ListenerLike = bench.DefaultListener{}
	if !bc.JSON {
		listener = newProgressListener(termenv.NewOutput(os.Stderr), bc.Positions)
	}
	summary := arena.Run(listener)

	if bc.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	printSummary(out, summary, arena.Seed)
	if summary.Invalid > 0 {
		return fmt.Errorf("%d invalid solutions", summary.Invalid)
	}
	return nil
}

func printSummary(out *termenv.Output, s bench.Summary, seed int64) {
	ok := out.Color("#98C379")
	bad := out.Color("#E06C75")
	dim := out.Color("#5C6370")

	verdict := out.String("OK").Foreground(ok).Bold()
	if s.Invalid > 0 {
		verdict = out.String("FAIL").Foreground(bad).Bold()
	}

	fmt.Fprintf(out, "%s  %dx%d board, %d positions, %d workers, seed %d\n",
		verdict, s.Disks, s.Pegs, s.TotalPositions, s.Workers, seed)
	fmt.Fprintf(out, "  solved   %s\n", out.String(fmt.Sprint(s.Solved)).Foreground(ok))
	fmt.Fprintf(out, "  empty    %d\n", s.Empty)
	fmt.Fprintf(out, "  invalid  %s\n", colorCount(out, s.Invalid, bad))
	fmt.Fprintf(out, "  moves    avg %.2f, max %d\n", s.AvgMoves, s.MaxMoves)
	fmt.Fprintf(out, "  expanded %d\n", s.Expanded)
	fmt.Fprintf(out, "  %s\n", out.String(fmt.Sprintf("elapsed %dms", s.ElapsedMs)).Foreground(dim))
}

func colorCount(out *termenv.Output, n int, color termenv.Color) termenv.Style {
	style := out.String(fmt.Sprint(n))
	if n > 0 {
		style = style.Foreground(color)
	}
	return style
}
