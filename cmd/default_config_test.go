package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "happiness.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func noEnv(string) string { return "" }

func noneChanged(string) bool { return false }

func TestLoadFileConfig_ParsesAllSections(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 8080
simulation:
  seed: 7
log_level: debug
`)
	cfg, err := loadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFileConfig_RejectsUnknownFields(t *testing.T) {
	// GIVEN a typo in a key
	path := writeConfig(t, "server:\n  prot: 8080\n")

	// THEN strict parsing fails rather than silently ignoring it
	_, err := loadFileConfig(path)
	assert.Error(t, err)
}

func TestLoadFileConfig_EmptyPathAndMissingFile(t *testing.T) {
	cfg, err := loadFileConfig("")
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, cfg)

	_, err = loadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveServeOptions_Defaults(t *testing.T) {
	opts, err := resolveServeOptions(ServeOptions{}, noneChanged, FileConfig{}, noEnv)
	require.NoError(t, err)
	assert.Equal(t, ServeOptions{Host: "0.0.0.0", Port: 5000, LogLevel: "info"}, opts)
	assert.Equal(t, "0.0.0.0:5000", opts.Addr())
}

func TestResolveServeOptions_Precedence(t *testing.T) {
	file := FileConfig{
		Server:     ServerSection{Host: "127.0.0.1", Port: 7000},
		Simulation: SimulationSection{Seed: 9},
		LogLevel:   "warn",
	}
	env := func(k string) string {
		if k == "PORT" {
			return "6000"
		}
		return ""
	}
	flags := ServeOptions{Host: "::", Port: 9000, Seed: 11, LogLevel: "debug"}

	tests := []struct {
		name    string
		changed map[string]bool
		getenv  func(string) string
		want    ServeOptions
	}{
		{"file only", nil, noEnv, ServeOptions{Host: "127.0.0.1", Port: 7000, Seed: 9, LogLevel: "warn"}},
		{"env beats file", nil, env, ServeOptions{Host: "127.0.0.1", Port: 6000, Seed: 9, LogLevel: "warn"}},
		{"flags beat env and file", map[string]bool{"host": true, "port": true, "seed": true, "log": true}, env, flags},
		{"only port flag", map[string]bool{"port": true}, env, ServeOptions{Host: "127.0.0.1", Port: 9000, Seed: 9, LogLevel: "warn"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := func(name string) bool { return tt.changed[name] }
			got, err := resolveServeOptions(flags, changed, file, tt.getenv)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveServeOptions_InvalidPort(t *testing.T) {
	badEnv := func(string) string { return "not-a-port" }
	_, err := resolveServeOptions(ServeOptions{}, noneChanged, FileConfig{}, badEnv)
	assert.Error(t, err)

	_, err = resolveServeOptions(ServeOptions{}, noneChanged, FileConfig{Server: ServerSection{Port: 70000}}, noEnv)
	assert.Error(t, err)
}
