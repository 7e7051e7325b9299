package engine

import (
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/gantt"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"
)

// runMLFQ implements Multilevel Feedback Queue scheduling: three FIFO
// queues with fixed per-queue quanta, demotion on quantum expiry, and
// promotion out of Q3 after Q3PromotionThreshold ticks of waiting.
func runMLFQ(table process.Table, log *gantt.Logger) {
	n := len(table)
	arrived := make([]bool, n)
	var q1, q2, q3 []int

	enqueueArrivals := func(t int) {
		for i, p := range table {
			if !arrived[i] && p.AT <= t {
				q1 = append(q1, i)
				table[i].CurrentQueue = 1
				arrived[i] = true
			}
		}
	}

	// promoteFromQ3 moves any process that has sat in Q3 for at least
	// Q3PromotionThreshold ticks to Q2, preserving the relative order of
	// whatever stays behind in Q3.
	promoteFromQ3 := func(t int) {
		if len(q3) == 0 {
			return
		}
		remaining := q3[:0:0]
		for _, idx := range q3 {
			p := table[idx]
			if p.LastQ3Entry >= 0 && t-p.LastQ3Entry >= Q3PromotionThreshold {
				p.CurrentQueue = 2
				p.LastQ3Entry = -1
				q2 = append(q2, idx)
			} else {
				remaining = append(remaining, idx)
			}
		}
		q3 = remaining
	}

	t := 0
	completed := 0

	for completed < n {
		enqueueArrivals(t)
		promoteFromQ3(t)

		var idx int
		switch {
		case len(q1) > 0:
			idx, q1 = q1[0], q1[1:]
		case len(q2) > 0:
			idx, q2 = q2[0], q2[1:]
		case len(q3) > 0:
			idx, q3 = q3[0], q3[1:]
		default:
			t = logIdle(log, t)
			continue
		}

		p := table[idx]
		fromQueue := p.CurrentQueue
		quantum := mlfqQuantum(fromQueue, p.RemTime)

		runTime := p.RemTime
		if quantum < runTime {
			runTime = quantum
		}
		t = dispatch(log, p, t, runTime)

		if p.RemTime == 0 {
			p.Finish(t)
			completed++
			continue
		}

		switch fromQueue {
		case 1:
			p.CurrentQueue = 2
			q2 = append(q2, idx)
		default:
			// Demoted from Q2, or (defensively) still in Q3. Q3's
			// quantum is unbounded so a Q3 dispatch always finishes;
			// this branch only runs for a Q2 demotion in practice.
			p.CurrentQueue = 3
			p.LastQ3Entry = t
			q3 = append(q3, idx)
		}
	}
}

// mlfqQuantum returns the per-queue quantum: Q1=8, Q2=16, Q3=unbounded
// (so we return the process's own remaining time).
func mlfqQuantum(queue, remTime int) int {
	switch queue {
	case 1:
		return Q1Quantum
	case 2:
		return Q2Quantum
	default:
		return remTime
	}
}
