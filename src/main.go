package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"elevbank/src/config"
	"elevbank/src/console"
	"elevbank/src/controller"
	"elevbank/src/dispatcher"
	"elevbank/src/elev"
	"elevbank/src/utils"
)

func main() {
	configPath := flag.String("config", "", "YAML or TOML config file")
	envFile := flag.String("env", ".env", "optional file with ELEVBANK_* overrides")
	keys := flag.Bool("keys", false, "single-key console instead of line commands")
	flag.Parse()

	if err := run(*configPath, *envFile, *keys); err != nil {
		fmt.Fprintln(os.Stderr, "elevbank:", err)
		os.Exit(1)
	}
}

func run(configPath, envFile string, keys bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(envFile); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Log.SlogLevel()
	runID, closeLog, err := utils.InitLogger(level, cfg.Log.Dir)
	if err != nil {
		return err
	}
	defer closeLog()

	b, err := dispatcher.New(cfg.Building.Floors, cfg.Building.Cars, cfg.Building.Capacity,
		elev.NewIDCounter(cfg.Simulation.FirstCarID))
	if err != nil {
		return fmt.Errorf("building: %w", err)
	}
	slog.Info("Building ready", "run", runID, "floors", b.NumFloors(), "cars", b.NumCars(), "capacity", b.Capacity())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctl := controller.Start(ctx, b, cfg.Simulation.StepInterval())
	if keys {
		if err := ctl.Subscribe(func(r dispatcher.BuildingReport) { utils.PrintStatus(os.Stdout, r) }); err != nil {
			return err
		}
	}
	if cfg.Simulation.AutoRun {
		if err := ctl.StartSystem(); err != nil {
			return err
		}
		if err := ctl.SetAutoRun(true); err != nil {
			return err
		}
	}

	ui := console.New(ctl, os.Stdout)
	errCh := make(chan error, 1)
	go func() {
		if keys {
			errCh <- ui.RunKeys()
		} else {
			errCh <- ui.Run(os.Stdin)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("Interrupted, shutting down")
		return nil
	}
}
