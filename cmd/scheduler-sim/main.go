// Command scheduler-sim is the CLI/HTTP surface around the engine: a
// cobra root command with "run" and "serve" subcommands.
package main

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/config"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/logging"
)

var (
	configPath string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "scheduler-sim",
		Short: "Deterministic CPU scheduling simulator",
		Long: "scheduler-sim runs FCFS, SJF, SRTF, PRIO_NP, PRIO_P, RR, MLFQ, and MLQ " +
			"over a workload and reports per-process metrics and a coalesced Gantt log.",
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "overrides the configured log level")
}

func main() {
	atexit.Register(func() {
		logging.BuildLogger("info").Info("scheduler-sim exiting")
	})

	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

// loadConfig reads the --config file (or falls back to config.Default)
// and applies the --log-level override, if any.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}
