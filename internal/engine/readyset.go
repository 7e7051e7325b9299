package engine

import "github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"

// scanReady recomputes the ready set from scratch at time t by scanning
// the table for processes that have arrived and have work left. Used by
// FCFS/SJF/SRTF/PRIO_NP/PRIO_P.
func scanReady(table process.Table, t int) []int {
	var ready []int
	for i, p := range table {
		if p.Ready(t) {
			ready = append(ready, i)
		}
	}
	return ready
}

// bestBy returns the index (into table) of the ready candidate minimizing
// key, breaking ties with prefer when non-nil (a strict "a should replace
// b" predicate) or otherwise favoring the earliest-scanned (input order)
// candidate.
func bestBy(table process.Table, ready []int, key func(*process.Process) int, prefer func(a, b *process.Process) bool) int {
	best := -1
	for _, idx := range ready {
		if best == -1 {
			best = idx
			continue
		}
		ka, kb := key(table[idx]), key(table[best])
		switch {
		case ka < kb:
			best = idx
		case ka == kb && prefer != nil && prefer(table[idx], table[best]):
			best = idx
		}
	}
	return best
}

func byEarlierAT(a, b *process.Process) bool {
	return a.AT < b.AT
}
