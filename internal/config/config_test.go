package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigParsing(t *testing.T) {
	configContent := `# Game options
[hanoi]
disks 4
pegs 3
fps 30
autoplayMs 250
position 4,3|2|1
logLevel debug
logFile /tmp/hanoi.log

[bench]
positions 20
workers 8
scramble 10
seed 42
disks 6
pegs 4
movetime 1000
json yes`

	config, err := LoadFromReader(strings.NewReader(configContent))
	require.NoError(t, err)
	assert.False(t, config.HasWarnings(), config.GetWarnings())

	assert.Equal(t, HanoiConfig{
		Disks:      4,
		Pegs:       3,
		FPS:        30,
		AutoplayMs: 250,
		Position:   "4,3|2|1",
		LogLevel:   "debug",
		LogFile:    "/tmp/hanoi.log",
	}, config.Hanoi)

	assert.Equal(t, BenchConfig{
		Positions: 20,
		Workers:   8,
		Scramble:  10,
		Seed:      42,
		Disks:     6,
		Pegs:      4,
		Movetime:  1000,
		JSON:      true,
	}, config.Bench)
}

func TestEmptyConfig(t *testing.T) {
	config, err := LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)

	assert.Equal(t, NewConfig(), config)
	assert.Equal(t, 5, config.Hanoi.Disks)
	assert.Equal(t, 5, config.Hanoi.Pegs)
	assert.Equal(t, 60, config.Hanoi.FPS)
	assert.Equal(t, 500, config.Hanoi.AutoplayMs)
	assert.Equal(t, -1, config.Bench.Movetime)
}

func TestConfigWithComments(t *testing.T) {
	configContent := `
# comment
   # indented comment
[hanoi]

# disks 9
disks 3
`
	config, err := LoadFromReader(strings.NewReader(configContent))
	require.NoError(t, err)
	assert.Equal(t, 3, config.Hanoi.Disks)
	assert.Empty(t, config.Warnings)
}

func TestConfigWarnings(t *testing.T) {
	configContent := `verbose true
[hanoi]
colour red
[replay]
speed 2
[bench]
workers 2`

	config, err := LoadFromReader(strings.NewReader(configContent))
	require.NoError(t, err)

	require.Len(t, config.Warnings, 3)
	assert.Contains(t, config.Warnings[0], `option "verbose" outside of a section`)
	assert.Contains(t, config.Warnings[1], `unknown option "colour" in [hanoi]`)
	assert.Contains(t, config.Warnings[2], "unknown section [replay]")
	assert.Equal(t, 2, config.Bench.Workers)
}

func TestConfigInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not a number", "[hanoi]\ndisks many"},
		{"too many pegs", "[hanoi]\npegs 99"},
		{"zero fps", "[hanoi]\nfps 0"},
		{"bad position", "[hanoi]\nposition 1,1|"},
		{"bad level", "[hanoi]\nlogLevel loud"},
		{"bad bool", "[bench]\njson maybe"},
		{"bad seed", "[bench]\nseed 0x"},
		{"movetime below -1", "[bench]\nmovetime -5"},
		{"zero movetime", "[bench]\nmovetime 0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(tc.content))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestLoadFromPathMissing(t *testing.T) {
	config, err := LoadFromPath(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), config)
}

func TestLoadFromPathExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("[bench]\npositions 7\n"), 0600))

	config, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 7, config.Bench.Positions)
}

func TestLoadFromPathRejectsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(target, []byte("[hanoi]\ndisks 3\n"), 0600))
	require.NoError(t, os.Symlink(target, link))

	_, err := LoadFromPath(link)
	assert.ErrorContains(t, err, "symlink not allowed")
}

func TestLoadUsesConfigPathEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("[hanoi]\npegs 4\n"), 0600))
	t.Setenv(EnvConfigPath, path)

	config, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, config.Hanoi.Pegs)
}

func TestGetConfigPathDefault(t *testing.T) {
	dir := t.TempDir()

	homeVar := "HOME"
	if runtime.GOOS == "windows" {
		homeVar = "USERPROFILE"
	}
	t.Setenv(homeVar, dir)
	t.Setenv(EnvConfigPath, "")

	got, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".go-hanoi", "config"), got)
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "error", "INFO"} {
		_, err := ParseLevel(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
