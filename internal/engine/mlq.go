package engine

import (
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/gantt"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"
)

// runMLQ implements Multilevel Queue scheduling: three queues with a
// fixed, input-assigned membership (process.Priority in {1,2,3}). Q1 is
// priority-preemptive and re-evaluated from scratch every dispatch; Q2 is
// round robin with MLQQ2Quantum; Q3 is FCFS. Strict priority means Q1 is
// checked first on every dispatch decision, ahead of Q2 and Q3.
func runMLQ(table process.Table, log *gantt.Logger) {
	n := len(table)
	enqueued := make([]bool, n)
	var q2, q3 []int

	enqueueArrivals := func(t int) {
		for i, p := range table {
			if enqueued[i] || p.AT > t {
				continue
			}
			enqueued[i] = true
			switch p.Priority {
			case 2:
				q2 = append(q2, i)
			case 3:
				q3 = append(q3, i)
			}
			p.CurrentQueue = p.Priority
		}
	}

	t := 0
	completed := 0

	for completed < n {
		enqueueArrivals(t)

		idx := selectQ1(table, t)
		if idx != -1 {
			runTime := mlqRunTime(table, idx, t, 1)
			if runTime <= 0 {
				continue
			}
			t = dispatch(log, table[idx], t, runTime)
			if table[idx].RemTime == 0 {
				table[idx].Finish(t)
				completed++
			}
			continue
		}

		if len(q2) > 0 {
			idx, q2 = q2[0], q2[1:]
			runTime := mlqRunTime(table, idx, t, MLQQ2Quantum)
			if runTime <= 0 {
				continue
			}
			t = dispatch(log, table[idx], t, runTime)
			if table[idx].RemTime == 0 {
				table[idx].Finish(t)
				completed++
			} else {
				q2 = append(q2, idx)
			}
			continue
		}

		if len(q3) > 0 {
			idx, q3 = q3[0], q3[1:]
			runTime := mlqRunTime(table, idx, t, table[idx].RemTime)
			if runTime <= 0 {
				continue
			}
			t = dispatch(log, table[idx], t, runTime)
			if table[idx].RemTime == 0 {
				table[idx].Finish(t)
				completed++
			} else {
				// Preempted by a Q1 arrival: keep its place at the head.
				q3 = append([]int{idx}, q3...)
			}
			continue
		}

		t = logIdle(log, t)
	}
}

// selectQ1 implements the priority-preemptive queue: every Q1-assigned,
// ready, not-yet-complete process is a candidate every tick, chosen by
// base priority, ties broken by earlier arrival.
func selectQ1(table process.Table, t int) int {
	var ready []int
	for i, p := range table {
		if p.Priority == 1 && p.Ready(t) {
			ready = append(ready, i)
		}
	}
	return bestBy(table, ready, func(p *process.Process) int { return p.BasePriority }, byEarlierAT)
}

// mlqRunTime is min(rem_time, queue quantum when applicable), clamped
// downward to the next arrival of any Q1-assigned process, since Q1 is
// strictly higher priority than Q2/Q3 and must preempt them on arrival.
func mlqRunTime(table process.Table, idx, t, quantum int) int {
	p := table[idx]
	switchAt := t + p.RemTime
	if t+quantum < switchAt {
		switchAt = t + quantum
	}
	for _, other := range table {
		if other.Priority != 1 || other.RemTime <= 0 {
			continue
		}
		if other.AT > t && other.AT < switchAt {
			switchAt = other.AT
		}
	}
	runTime := switchAt - t
	if runTime <= 0 {
		return 0
	}
	return runTime
}
