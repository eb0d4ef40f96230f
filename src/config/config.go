package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DoorOpenTicks     = 3
	TerminusWaitTicks = 5
	MinCarFloors      = 3
	MaxCarFloors      = 30
	MinCarCapacity    = 3
	MaxCarCapacity    = 20
	EnvPrefix         = "ELEVBANK_"
)

type Config struct {
	Building   BuildingConfig   `yaml:"building" toml:"building"`
	Simulation SimulationConfig `yaml:"simulation" toml:"simulation"`
	Log        LogConfig        `yaml:"log" toml:"log"`
}

type BuildingConfig struct {
	Floors   int `yaml:"floors" toml:"floors"`
	Cars     int `yaml:"cars" toml:"cars"`
	Capacity int `yaml:"capacity" toml:"capacity"`
}

type SimulationConfig struct {
	StepIntervalMs int  `yaml:"step_interval_ms" toml:"step_interval_ms"`
	AutoRun        bool `yaml:"auto_run" toml:"auto_run"`
	FirstCarID     int  `yaml:"first_car_id" toml:"first_car_id"`
}

type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	// Dir enables a per-run log file next to stderr output. Empty disables it.
	Dir string `yaml:"dir" toml:"dir"`
}

// Default mirrors the console setup: 11 floors, 8 cars of capacity 8.
func Default() Config {
	return Config{
		Building:   BuildingConfig{Floors: 11, Cars: 8, Capacity: 8},
		Simulation: SimulationConfig{StepIntervalMs: 500},
		Log:        LogConfig{Level: "info"},
	}
}

// Load reads a YAML or TOML file on top of the defaults. The decoder is chosen by extension.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	case ".toml":
		_, err = toml.Decode(string(data), &c)
	default:
		return c, fmt.Errorf("config %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err != nil {
		return c, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return c, nil
}

// ApplyEnv overlays ELEVBANK_* settings from an optional .env file and then the process
// environment, which wins.
func (c *Config) ApplyEnv(envFile string) error {
	vars := make(map[string]string)
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading env file: %w", err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, EnvPrefix) {
			vars[k] = v
		}
	}

	ints := map[string]*int{
		"FLOORS":           &c.Building.Floors,
		"CARS":             &c.Building.Cars,
		"CAPACITY":         &c.Building.Capacity,
		"STEP_INTERVAL_MS": &c.Simulation.StepIntervalMs,
		"FIRST_CAR_ID":     &c.Simulation.FirstCarID,
	}
	for key, dst := range ints {
		raw, ok := vars[EnvPrefix+key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
	}

	if raw, ok := vars[EnvPrefix+"AUTO_RUN"]; ok {
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("%sAUTO_RUN: %w", EnvPrefix, err)
		}
		c.Simulation.AutoRun = b
	}
	if raw, ok := vars[EnvPrefix+"LOG_LEVEL"]; ok {
		c.Log.Level = raw
	}
	if raw, ok := vars[EnvPrefix+"LOG_DIR"]; ok {
		c.Log.Dir = raw
	}
	return nil
}

// Validate checks the settings that are not owned by the building itself.
// Floor, car and capacity ranges are enforced when the building is constructed.
func (c Config) Validate() error {
	if c.Simulation.StepIntervalMs <= 0 {
		return fmt.Errorf("step_interval_ms must be positive, got %d", c.Simulation.StepIntervalMs)
	}
	if c.Simulation.FirstCarID < 0 {
		return fmt.Errorf("first_car_id must not be negative, got %d", c.Simulation.FirstCarID)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c SimulationConfig) StepInterval() time.Duration {
	return time.Duration(c.StepIntervalMs) * time.Millisecond
}

func (c LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return level, fmt.Errorf("log level %q: %w", c.Level, err)
	}
	return level, nil
}
