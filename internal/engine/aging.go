package engine

import "github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"

// applyAging recomputes CurrentPriority for PRIO_NP/PRIO_P: every ready
// process that has never run has its priority aged from its base
// priority and wait time. Aging freezes once a process has executed at
// least once, which is why only processes with FirstRun == -1 are
// touched.
func applyAging(table process.Table, t int) {
	for _, p := range table {
		if !p.Ready(t) || p.FirstRun != -1 {
			continue
		}
		aged := p.BasePriority - (t-p.AT)/PriorityAgingRate
		if aged < 1 {
			aged = 1
		}
		p.CurrentPriority = aged
	}
}
