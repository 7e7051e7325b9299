// Package gantt implements the Gantt Logger: a coalescing append log of
// (pid, start, finish) CPU-allocation intervals.
package gantt

import "github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"

// Entry is one Gantt interval. PID == process.IdlePID denotes idle.
type Entry struct {
	PID    int
	Start  int
	Finish int
}

// Logger accumulates Gantt entries, coalescing adjacent same-pid intervals
// and truncating at maxLogs.
type Logger struct {
	entries    []Entry
	maxLogs    int
	overflowed bool
}

// NewLogger returns a Logger that keeps at most maxLogs entries; a maxLogs
// of zero or less means no limit.
func NewLogger(maxLogs int) *Logger {
	return &Logger{maxLogs: maxLogs}
}

// Append records the dispatch of pid over [start, finish). If the log is
// non-empty, its last entry has the same pid, and that entry's Finish
// equals start, the last entry is extended in place instead of appending a
// new one.
func (l *Logger) Append(pid, start, finish int) {
	if finish <= start {
		return
	}
	if n := len(l.entries); n > 0 {
		last := &l.entries[n-1]
		if last.PID == pid && last.Finish == start {
			last.Finish = finish
			return
		}
	}
	if l.maxLogs > 0 && len(l.entries) >= l.maxLogs {
		l.overflowed = true
		return
	}
	l.entries = append(l.entries, Entry{PID: pid, Start: start, Finish: finish})
}

// Entries returns a defensive copy of the recorded, coalesced intervals.
func (l *Logger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports how many entries are currently recorded.
func (l *Logger) Len() int {
	return len(l.entries)
}

// Overflowed reports whether an Append was dropped because maxLogs was
// reached.
func (l *Logger) Overflowed() bool {
	return l.overflowed
}

// Makespan returns the finish time of the last recorded interval, or 0 if
// the log is empty.
func (l *Logger) Makespan() int {
	if len(l.entries) == 0 {
		return 0
	}
	return l.entries[len(l.entries)-1].Finish
}

// NonIdleDuration sums the duration of every non-idle interval. Summed
// over all processes, bt should equal this total.
func (l *Logger) NonIdleDuration() int {
	total := 0
	for _, e := range l.entries {
		if e.PID != process.IdlePID {
			total += e.Finish - e.Start
		}
	}
	return total
}
