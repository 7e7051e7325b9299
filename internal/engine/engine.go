// Package engine is a deterministic, single-threaded discrete-event CPU
// scheduling simulator. Run is the simulation loop; everything else in
// this package is one of its shared helpers or one algorithm family's
// selection/oracle/queue logic.
package engine

import (
	"fmt"

	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/gantt"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"
)

// Run executes algo over table starting at t=0, mutating table in place
// (CT/TAT/WT/FirstRun/RemTime and, for MLFQ/MLQ, CurrentQueue/CurrentPriority)
// and returning the coalesced Gantt log. table must already satisfy
// process.Table.Validate (and ValidateMLQ for algo == MLQ); Run does not
// re-check those invariants.
func Run(table process.Table, algo Algorithm, quantum, maxLogs int) (*gantt.Logger, error) {
	if algo == RR && quantum <= 0 {
		return nil, fmt.Errorf("RR requires a positive quantum, got %d", quantum)
	}

	log := gantt.NewLogger(maxLogs)
	if len(table) == 0 {
		return log, nil
	}

	switch algo {
	case RR:
		runRR(table, log, quantum)
	case MLFQ:
		runMLFQ(table, log)
	case MLQ:
		runMLQ(table, log)
	default:
		runGeneric(table, log, algo)
	}

	return log, nil
}

// logIdle extends or starts an idle interval, advancing t by one unit at
// a time rather than jumping ahead to the next arrival.
func logIdle(log *gantt.Logger, t int) int {
	log.Append(process.IdlePID, t, t+1)
	return t + 1
}

// dispatch runs p for runTime starting at t, recording first_run and the
// Gantt interval, and returns the new current time.
func dispatch(log *gantt.Logger, p *process.Process, t, runTime int) int {
	if runTime <= 0 {
		return t
	}
	p.Dispatch(t)
	p.RemTime -= runTime
	log.Append(p.PID, t, t+runTime)
	return t + runTime
}

// runGeneric handles the algorithms whose ready set is recomputed from
// scratch every tick: FCFS, SJF, SRTF, PRIO_NP, PRIO_P.
func runGeneric(table process.Table, log *gantt.Logger, algo Algorithm) {
	t := 0
	completed := 0
	n := len(table)

	for completed < n {
		if algo.usesAging() {
			applyAging(table, t)
		}

		ready := scanReady(table, t)
		idx := Select(algo, table, ready)
		if idx == -1 {
			t = logIdle(log, t)
			continue
		}

		runTime := RunTime(algo, table, idx, t)
		if runTime <= 0 {
			// Defensive fallback: re-select without dispatching or
			// advancing time.
			continue
		}

		t = dispatch(log, table[idx], t, runTime)
		if table[idx].RemTime == 0 {
			table[idx].Finish(t)
			completed++
		}
	}
}
