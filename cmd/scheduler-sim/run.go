package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/engine"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/gantt"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/logging"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/store"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/pkg/bridge"
)

var (
	runAlgorithm string
	runQuantum   int

	runCmd = &cobra.Command{
		Use:   "run <workload.json>",
		Short: "Run one simulation and print metrics plus the Gantt log",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
)

func init() {
	runCmd.Flags().StringVar(&runAlgorithm, "algorithm", "", "FCFS, SJF, SRTF, PRIO_NP, PRIO_P, RR, MLFQ, or MLQ")
	runCmd.Flags().IntVar(&runQuantum, "quantum", 0, "time quantum for RR (0 uses the configured quantum)")
	rootCmd.AddCommand(runCmd)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logging.BuildLogger(cfg.LogLevel)

	algoName := runAlgorithm
	if algoName == "" {
		algoName = cfg.DefaultAlgorithm
	}
	algo, err := parseAlgorithmName(algoName)
	if err != nil {
		return err
	}

	table, err := loadWorkload(args[0])
	if err != nil {
		return err
	}
	if err := table.Validate(); err != nil {
		return fmt.Errorf("invalid workload: %w", err)
	}
	if algo == engine.MLQ {
		if err := table.ValidateMLQ(); err != nil {
			return fmt.Errorf("invalid workload: %w", err)
		}
	}

	quantum := runQuantum
	if quantum == 0 {
		quantum = cfg.QuantumOrDefault(2)
	}

	var hist *store.Store
	if cfg.SQLitePath != "" {
		hist, err = store.Open(cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer hist.Close()
	}

	processes := toFlatProcesses(table)
	logBuffer := make([]gantt.Entry, cfg.MaxLogs)
	host := &bridge.Host{Log: log, Store: hist, Now: func() int64 { return time.Now().Unix() }}

	start := time.Now()
	log.Info("starting run", logging.StringAttr("algorithm", algo.String()), logging.IntAttr("process_count", len(processes)))

	n := host.RunScheduler(processes, int(algo), quantum, logBuffer, cfg.MaxLogs)
	if n < 0 {
		return fmt.Errorf("run_scheduler rejected input for algorithm %s", algo.String())
	}
	elapsed := time.Since(start)

	fmt.Printf("algorithm: %s (elapsed %s)\n\n", algo.String(), elapsed)
	fmt.Println("pid\tat\tbt\tct\ttat\twt")
	for _, p := range processes {
		fmt.Printf("%d\t%d\t%d\t%d\t%d\t%d\n", p.PID, p.AT, p.BT, p.CT, p.TAT, p.WT)
	}

	fmt.Println("\ngantt log:")
	for _, e := range logBuffer[:n] {
		pid := fmt.Sprintf("%d", e.PID)
		if e.PID == process.IdlePID {
			pid = "idle"
		}
		fmt.Printf("  [%d, %d) %s\n", e.Start, e.Finish, pid)
	}

	makespan := 0
	if n > 0 {
		makespan = logBuffer[n-1].Finish
	}
	fmt.Printf("\nmakespan: %s\n", humanize.Comma(int64(makespan)))
	if n == cfg.MaxLogs {
		fmt.Println("warning: gantt log truncated at max_logs")
	}

	return nil
}

func toFlatProcesses(table process.Table) []process.Process {
	out := make([]process.Process, len(table))
	for i, p := range table {
		out[i] = *p
	}
	return out
}

func parseAlgorithmName(name string) (engine.Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "FCFS":
		return engine.FCFS, nil
	case "SJF":
		return engine.SJF, nil
	case "SRTF":
		return engine.SRTF, nil
	case "PRIO_NP":
		return engine.PrioNP, nil
	case "PRIO_P":
		return engine.PrioP, nil
	case "RR":
		return engine.RR, nil
	case "MLFQ":
		return engine.MLFQ, nil
	case "MLQ":
		return engine.MLQ, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", name)
	}
}
