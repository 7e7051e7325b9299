package engine

import "github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"

// RunTime computes how long the running process should execute before
// the next context switch, for the recomputed-ready-set family (FCFS,
// SJF, SRTF, PRIO_NP, PRIO_P).
func RunTime(algo Algorithm, table process.Table, runningIdx, t int) int {
	running := table[runningIdx]

	if algo.nonPreemptive() {
		// FCFS, SJF, PRIO_NP: run to completion.
		return running.RemTime
	}

	switch algo {
	case SRTF:
		return srtfRunTime(table, runningIdx, t)
	case PrioP:
		return prioPRunTime(table, runningIdx, t)
	default:
		return running.RemTime
	}
}

// srtfRunTime finds the next arrival that would strictly shorten the
// remaining-time winner and clamps the run to that point.
func srtfRunTime(table process.Table, runningIdx, t int) int {
	running := table[runningIdx]
	switchAt := t + running.RemTime

	for i, p := range table {
		if i == runningIdx || p.RemTime <= 0 {
			continue
		}
		if p.AT > t && p.BT < running.RemTime && p.AT < switchAt {
			switchAt = p.AT
		}
	}

	runTime := switchAt - t
	if runTime <= 0 {
		return 0
	}
	return runTime
}

// prioPRunTime clamps the run to the next arrival of a higher-priority
// process. If an already-ready process has aged past the running one,
// run_time is clamped to 1 so the loop re-evaluates next tick.
func prioPRunTime(table process.Table, runningIdx, t int) int {
	running := table[runningIdx]
	switchAt := t + running.RemTime
	overtakenByReady := false

	for i, p := range table {
		if i == runningIdx || p.RemTime <= 0 {
			continue
		}
		if p.CurrentPriority >= running.CurrentPriority {
			continue
		}
		if p.AT > t && p.AT < switchAt {
			switchAt = p.AT
		}
		if p.Ready(t) {
			overtakenByReady = true
		}
	}

	runTime := switchAt - t
	if overtakenByReady && runTime > 1 {
		runTime = 1
	}
	if runTime <= 0 {
		return 0
	}
	return runTime
}
