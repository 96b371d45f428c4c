package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-hanoi/pkg/game"
	"github.com/IlikeChooros/go-hanoi/pkg/hanoi"
)

var errUnknownOption = errors.New("unknown option")

// Config holds the options of both binaries, file values are overridden by flags.
type Config struct {
	// Options of the interactive game, parsed from the [hanoi] section
	Hanoi HanoiConfig
	// Options of the benchmark arena, parsed from the [bench] section
	Bench BenchConfig
	// Warnings contains any warnings generated during config loading
	Warnings []string
}

type HanoiConfig struct {
	Disks      int
	Pegs       int
	FPS        int
	AutoplayMs int
	// Custom start position in board notation, empty for the initial board
	Position string
	LogLevel string
	LogFile  string
}

type BenchConfig struct {
	Positions int
	Workers   int
	Scramble  int
	Seed      int64
	Disks     int
	Pegs      int
	// Per position time limit in milliseconds, -1 for none
	Movetime int
	JSON     bool
}

// NewConfig creates a configuration with every option at its default.
func NewConfig() *Config {
	return &Config{
		Hanoi: HanoiConfig{
			Disks:      hanoi.DefaultDisks,
			Pegs:       hanoi.DefaultPegs,
			FPS:        game.DefaultFPS,
			AutoplayMs: 1000 * game.DefaultTicksPerMove / game.DefaultFPS,
			LogLevel:   "info",
		},
		Bench: BenchConfig{
			Positions: 100,
			Workers:   4,
			Scramble:  64,
			Disks:     hanoi.DefaultDisks,
			Pegs:      hanoi.DefaultPegs,
			Movetime:  -1,
		},
		Warnings: make([]string, 0),
	}
}

// Load loads configuration from the default config file path.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads configuration from the specified file path.
// The file uses dnsmasq-style format: optionName remainingLineIsTheValue
// A missing file yields the defaults, a symlink is rejected.
func LoadFromPath(path string) (*Config, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if fi.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("symlink not allowed in config path: %s", path)
	}

	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader loads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	config := NewConfig()
	scanner := bufio.NewScanner(r)

	var section string
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(strings.Trim(line, "[]"))
			if section != "hanoi" && section != "bench" {
				config.addWarning("line %d: unknown section [%s]", lineNum, section)
			}
			continue
		}

		optionName, value, _ := strings.Cut(line, " ")
		value = strings.TrimSpace(value)

		var err error
		switch section {
		case "hanoi":
			err = parseHanoiOption(&config.Hanoi, optionName, value)
		case "bench":
			err = parseBenchOption(&config.Bench, optionName, value)
		case "":
			config.addWarning("line %d: option %q outside of a section", lineNum, optionName)
			continue
		default:
			// already warned about the section
			continue
		}

		if errors.Is(err, errUnknownOption) {
			config.addWarning("line %d: unknown option %q in [%s]", lineNum, optionName, section)
		} else if err != nil {
			return nil, fmt.Errorf("line %d: invalid %s option %q: %w", lineNum, section, optionName, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	return config, nil
}

// addWarning adds a warning to the config's warnings list.
func (c *Config) addWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.Warnings = append(c.Warnings, msg)
	slog.Warn("[Config] " + msg)
}

// GetWarnings returns any warnings generated during config loading.
func (c *Config) GetWarnings() []string {
	return c.Warnings
}

// HasWarnings returns true if there are any warnings.
func (c *Config) HasWarnings() bool {
	return len(c.Warnings) > 0
}

// parseHanoiOption parses an option of the [hanoi] section.
// Supported options:
//   - disks <int>: number of disks (default: 5)
//   - pegs <int>: number of pegs (default: 5)
//   - fps <int>: frames per second (default: 60)
//   - autoplayMs <int>: milliseconds between autoplay moves (default: 500)
//   - position <notation>: custom start position, e.g. 3,2|1|
//   - logLevel <debug|info|warn|error>: log level (default: info)
//   - logFile <path>: log destination, logs are discarded when empty
func parseHanoiOption(hc *HanoiConfig, name, value string) error {
	var err error
	switch name {
	case "disks":
		hc.Disks, err = parseRange(value, 1, hanoi.MaxDisks)
	case "pegs":
		hc.Pegs, err = parseRange(value, 1, hanoi.MaxPegs)
	case "fps":
		hc.FPS, err = parseRange(value, 1, 1000)
	case "autoplayMs":
		hc.AutoplayMs, err = parseRange(value, 1, 60_000)
	case "position":
		if _, err = hanoi.ParseBoard(value); err == nil {
			hc.Position = value
		}
	case "logLevel":
		if _, err = ParseLevel(value); err == nil {
			hc.LogLevel = value
		}
	case "logFile":
		hc.LogFile = value
	default:
		return errUnknownOption
	}
	return err
}

// parseBenchOption parses an option of the [bench] section.
// Supported options:
//   - positions <int>: number of scrambled positions (default: 100)
//   - workers <int>: number of worker goroutines (default: 4)
//   - scramble <int>: random moves per scramble (default: 64)
//   - seed <int>: random seed, 0 picks one from the clock
//   - disks <int>, pegs <int>: board dimensions (default: 5, 5)
//   - movetime <int>: per position time limit in ms, -1 for none
//   - json <bool>: print the summary as JSON
func parseBenchOption(bc *BenchConfig, name, value string) error {
	var err error
	switch name {
	case "positions":
		bc.Positions, err = parseRange(value, 1, 1<<30)
	case "workers":
		bc.Workers, err = parseRange(value, 1, 1024)
	case "scramble":
		bc.Scramble, err = parseRange(value, 0, 1<<30)
	case "seed":
		bc.Seed, err = strconv.ParseInt(value, 10, 64)
	case "disks":
		bc.Disks, err = parseRange(value, 1, hanoi.MaxDisks)
	case "pegs":
		bc.Pegs, err = parseRange(value, 1, hanoi.MaxPegs)
	case "movetime":
		bc.Movetime, err = parseRange(value, -1, 1<<30)
		if err == nil && bc.Movetime == 0 {
			err = fmt.Errorf("movetime must be positive or -1")
		}
	case "json":
		bc.JSON, err = parseBool(value)
	default:
		return errUnknownOption
	}
	return err
}

func parseRange(value string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value %q: %w", value, err)
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("value %d out of range [%d, %d]", n, lo, hi)
	}
	return n, nil
}

// parseBool parses a boolean value from string.
// Accepts: true, false, 1, 0, yes, no, on, off (case-insensitive)
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %s", s)
	}
}

// ParseLevel maps a level name to its slog level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
