package main

import (
	"fmt"
	"os"

	"github.com/diegok/solopong/internal/app"
	"github.com/diegok/solopong/internal/config"
)

func main() {
	if err := config.LoadEnv(config.EnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	if cfg.Headless {
		report := app.RunHeadless(cfg, true)
		if err := report.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  solopong [options]                Play against the computer")
	fmt.Fprintln(os.Stderr, "  solopong --headless [--ticks n]   Simulate without a terminal")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --difficulty <x>     AI speed multiplier (default: 1)")
	fmt.Fprintln(os.Stderr, "  --ai-speed <n>       AI paddle base speed (default: 250)")
	fmt.Fprintln(os.Stderr, "  --player-speed <n>   Player paddle speed (default: 500)")
	fmt.Fprintln(os.Stderr, "  --mute               Disable sound")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Defaults can also be set in .env:")
	fmt.Fprintf(os.Stderr, "  %s, %s, %s, %s\n",
		config.EnvDifficulty, config.EnvAISpeed, config.EnvPlayerSpeed, config.EnvMute)
}
