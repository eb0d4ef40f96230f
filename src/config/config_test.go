package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != Default() {
		t.Errorf("got %+v, want defaults %+v", c, Default())
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "bank.yaml", `
building:
  floors: 10
  cars: 2
simulation:
  step_interval_ms: 100
  auto_run: true
log:
  level: debug
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Building.Floors != 10 || c.Building.Cars != 2 {
		t.Errorf("building = %+v", c.Building)
	}
	if c.Building.Capacity != Default().Building.Capacity {
		t.Errorf("capacity not defaulted, got %d", c.Building.Capacity)
	}
	if !c.Simulation.AutoRun || c.Simulation.StepInterval() != 100*time.Millisecond {
		t.Errorf("simulation = %+v", c.Simulation)
	}
	if level, _ := c.Log.SlogLevel(); level != slog.LevelDebug {
		t.Errorf("level = %v, want debug", level)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "bank.toml", `
[building]
floors = 5
cars = 3
capacity = 4

[log]
level = "warn"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := BuildingConfig{Floors: 5, Cars: 3, Capacity: 4}
	if c.Building != want {
		t.Errorf("building = %+v, want %+v", c.Building, want)
	}
	if c.Log.Level != "warn" {
		t.Errorf("log level = %q", c.Log.Level)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeFile(t, "bank.ini", "floors=3\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for .ini config")
	}
}

func TestApplyEnv(t *testing.T) {
	envFile := writeFile(t, ".env", "ELEVBANK_FLOORS=7\nELEVBANK_CARS=4\nELEVBANK_AUTO_RUN=true\n")
	t.Setenv("ELEVBANK_CARS", "6")

	c := Default()
	if err := c.ApplyEnv(envFile); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if c.Building.Floors != 7 {
		t.Errorf("floors = %d, want 7 from env file", c.Building.Floors)
	}
	if c.Building.Cars != 6 {
		t.Errorf("cars = %d, want 6 from process environment", c.Building.Cars)
	}
	if !c.Simulation.AutoRun {
		t.Error("auto_run not applied")
	}
}

func TestApplyEnvMissingFileIsIgnored(t *testing.T) {
	c := Default()
	if err := c.ApplyEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("ApplyEnv: %v", err)
	}
}

func TestApplyEnvBadNumber(t *testing.T) {
	t.Setenv("ELEVBANK_CAPACITY", "lots")
	c := Default()
	if err := c.ApplyEnv(""); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero interval", func(c *Config) { c.Simulation.StepIntervalMs = 0 }, true},
		{"negative first id", func(c *Config) { c.Simulation.FirstCarID = -1 }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			if err := c.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
