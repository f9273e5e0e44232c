package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	defaultHost    = "0.0.0.0"
	defaultPort    = 5000
	defaultLogLvl  = "info"
	portEnvVar     = "PORT"
	flagHost       = "host"
	flagPort       = "port"
	flagSeed       = "seed"
	flagLogLevel   = "log"
	flagConfigPath = "config"
)

// FileConfig is the optional YAML configuration file.
// Parsed with KnownFields(true) so typos are errors.
type FileConfig struct {
	Server     ServerSection     `yaml:"server"`
	Simulation SimulationSection `yaml:"simulation"`
	LogLevel   string            `yaml:"log_level"`
}

type ServerSection struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type SimulationSection struct {
	Seed int64 `yaml:"seed"` // 0 = derive from wall clock
}

// loadFileConfig parses path. An empty path yields the zero FileConfig.
func loadFileConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ServeOptions is the fully resolved configuration of the serve command.
type ServeOptions struct {
	Host     string
	Port     int
	Seed     int64
	LogLevel string
}

// Addr returns host:port.
func (o ServeOptions) Addr() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}

// resolveServeOptions merges sources. Precedence per field:
// explicitly set flag > $PORT (port only) > config file > built-in default.
// changed reports whether a flag was set on the command line.
func resolveServeOptions(flags ServeOptions, changed func(string) bool, file FileConfig, getenv func(string) string) (ServeOptions, error) {
	opts := ServeOptions{
		Host:     defaultHost,
		Port:     defaultPort,
		LogLevel: defaultLogLvl,
	}

	if file.Server.Host != "" {
		opts.Host = file.Server.Host
	}
	if file.Server.Port != 0 {
		opts.Port = file.Server.Port
	}
	if file.Simulation.Seed != 0 {
		opts.Seed = file.Simulation.Seed
	}
	if file.LogLevel != "" {
		opts.LogLevel = file.LogLevel
	}

	if env := getenv(portEnvVar); env != "" {
		port, err := strconv.Atoi(env)
		if err != nil {
			return opts, fmt.Errorf("invalid $%s %q: %w", portEnvVar, env, err)
		}
		opts.Port = port
	}

	if changed(flagHost) {
		opts.Host = flags.Host
	}
	if changed(flagPort) {
		opts.Port = flags.Port
	}
	if changed(flagSeed) {
		opts.Seed = flags.Seed
	}
	if changed(flagLogLevel) {
		opts.LogLevel = flags.LogLevel
	}

	if opts.Port <= 0 || opts.Port > 65535 {
		return opts, fmt.Errorf("port %d out of range", opts.Port)
	}
	return opts, nil
}
