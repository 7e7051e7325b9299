package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"
)

// workloadRecord is the on-disk shape of one process in a workload file:
// a JSON array of {pid,at,bt,priority}. Parsing workload files is not
// part of the engine's contract; it lives here so the engine stays a
// plain function of process.Table.
type workloadRecord struct {
	PID      int `json:"pid"`
	AT       int `json:"at"`
	BT       int `json:"bt"`
	Priority int `json:"priority"`
}

func loadWorkload(path string) (process.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workload %q: %w", path, err)
	}
	defer f.Close()

	var records []workloadRecord
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding workload %q: %w", path, err)
	}

	table := make(process.Table, len(records))
	for i, r := range records {
		table[i] = process.NewProcess(r.PID, r.AT, r.BT, r.Priority)
	}
	return table, nil
}
