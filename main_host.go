//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"pocket/app"
	"pocket/hal"
	"pocket/internal/scenario"
)

func main() {
	var (
		headless     hal.HeadlessConfig
		scale        int
		tui          bool
		scenarioPath string
	)
	headlessMode := flag.Bool("headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode and print both panels (0 = run forever).")
	flag.BoolVar(&tui, "tui", false, "Run in the terminal.")
	flag.StringVar(&scenarioPath, "scenario", "", "YAML scenario for the simulated radio, battery and button script.")
	flag.IntVar(&scale, "scale", 4, "Window pixel scale.")
	flag.Parse()

	host := hal.HostConfig{}
	if scenarioPath != "" {
		sc, err := scenario.Load(scenarioPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		host.Scenario = sc
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case *headlessMode:
		headless.Host = host
		err = hal.RunHeadless(ctx, app.Run, headless)
	case tui:
		err = hal.RunTerminal(ctx, app.Run, hal.TerminalConfig{Host: host})
	default:
		err = hal.RunWindow(ctx, app.Run, hal.WindowConfig{Scale: scale, Host: host})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
