package engine

import (
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/gantt"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"
)

// runRR implements Round Robin with a single FIFO queue of indices.
// Arrivals join the tail in input order. Arrivals detected while a
// process is running are appended to the tail before that process is
// re-appended. A dispatch always runs its full min(rem_time, quantum); a
// newly arrived peer becomes visible to the queue only once the running
// process's slice ends, not mid-slice.
func runRR(table process.Table, log *gantt.Logger, quantum int) {
	n := len(table)
	enqueued := make([]bool, n)
	var queue []int

	enqueueArrivals := func(t int) {
		for i, p := range table {
			if !enqueued[i] && p.AT <= t {
				queue = append(queue, i)
				enqueued[i] = true
			}
		}
	}

	t := 0
	completed := 0
	enqueueArrivals(t)

	for completed < n {
		if len(queue) == 0 {
			t = logIdle(log, t)
			enqueueArrivals(t)
			continue
		}

		idx := queue[0]
		queue = queue[1:]

		runTime := rrRunTime(table[idx], quantum)
		t = dispatch(log, table[idx], t, runTime)

		enqueueArrivals(t)

		if table[idx].RemTime == 0 {
			table[idx].Finish(t)
			completed++
		} else {
			queue = append(queue, idx)
		}
	}
}

// rrRunTime caps a dispatch at the quantum unless less work remains.
func rrRunTime(p *process.Process, quantum int) int {
	if p.RemTime < quantum {
		return p.RemTime
	}
	return quantum
}
