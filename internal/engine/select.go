package engine

import "github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"

// Select picks which ready process should run next, for the algorithms
// whose ready set is recomputed from scratch each tick (FCFS, SJF, SRTF,
// PRIO_NP, PRIO_P). It returns -1 if ready is empty.
func Select(algo Algorithm, table process.Table, ready []int) int {
	switch algo {
	case FCFS:
		// Smallest at; ties broken by input order (the first-scanned
		// candidate, since ready is built in ascending index order).
		return bestBy(table, ready, func(p *process.Process) int { return p.AT }, nil)
	case SJF, SRTF:
		// Smallest remaining time; ties broken by smaller at.
		return bestBy(table, ready, func(p *process.Process) int { return p.RemTime }, byEarlierAT)
	case PrioNP, PrioP:
		// Smallest current (aged) priority; ties broken by smaller at.
		return bestBy(table, ready, func(p *process.Process) int { return p.CurrentPriority }, byEarlierAT)
	default:
		return -1
	}
}
