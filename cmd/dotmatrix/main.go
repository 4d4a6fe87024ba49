package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/dotmatrixgb/dotmatrix"
	"github.com/dotmatrixgb/dotmatrix/terminal"
)

func main() {
	app := cli.NewApp()
	app.Name = "dotmatrix"
	app.Description = "A Game Boy emulator for the terminal"
	app.Usage = "dotmatrix [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the emulator without a graphical interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "load-state",
			Usage: "Path to a snapshot file to restore before running",
		},
		cli.StringFlag{
			Name:  "save-state",
			Usage: "Path to write a snapshot to when execution ends",
		},
	}
	app.Action = runEmulator

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	data, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading ROM file: %w", err)
	}

	machine := dotmatrix.New()
	if err := machine.LoadROM(data); err != nil {
		return err
	}

	if statePath := c.String("load-state"); statePath != "" {
		snapshot, err := os.ReadFile(statePath)
		if err != nil {
			return fmt.Errorf("reading snapshot file: %w", err)
		}
		if err := machine.LoadState(snapshot); err != nil {
			return err
		}
		slog.Info("Restored snapshot", "path", statePath)
	}

	if c.Bool("headless") {
		if err := runHeadless(c, machine, romPath); err != nil {
			return err
		}
	} else {
		shell := terminal.New(machine)
		if err := shell.Run(); err != nil {
			return err
		}
	}

	if statePath := c.String("save-state"); statePath != "" {
		snapshot, err := machine.SaveState()
		if err != nil {
			return err
		}
		if err := os.WriteFile(statePath, snapshot, 0644); err != nil {
			return fmt.Errorf("writing snapshot file: %w", err)
		}
		slog.Info("Saved snapshot", "path", statePath)
	}

	return nil
}

func runHeadless(c *cli.Context, machine *dotmatrix.Machine, romPath string) error {
	frames := c.Int("frames")
	if frames <= 0 {
		return errors.New("headless mode requires --frames option with a positive value")
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	romName := filepath.Base(romPath)
	romName = strings.TrimSuffix(romName, filepath.Ext(romName))

	slog.Info("Running headless mode", "rom", romName, "frames", frames)

	if err := machine.Start(); err != nil {
		return err
	}

	totalCycles := 0
	for i := 0; i < frames; i++ {
		cycles, complete, err := machine.RunFrame()
		if err != nil {
			return err
		}
		totalCycles += cycles
		if !complete {
			slog.Warn("Frame did not complete", "frame", i, "cycles", cycles)
		}

		if i%60 == 0 {
			slog.Info("Frame progress", "completed", i+1, "total", frames)
		}
	}

	slog.Info("Headless execution completed", "frames", frames, "cycles", totalCycles)
	return nil
}
