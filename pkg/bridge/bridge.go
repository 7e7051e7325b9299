// Package bridge is the one exported boundary function for whatever
// foreign caller eventually links against this module. It owns nothing
// the engine doesn't already own; it only adds the run-ID stamping and
// optional history persistence.
package bridge

import (
	"log/slog"

	"github.com/rs/xid"

	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/engine"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/gantt"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/logging"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/store"
)

// BadInput is the negative sentinel RunScheduler returns on malformed
// input, without mutating processes or logBuffer.
const BadInput = -1

// Host wraps the optional ambient collaborators a caller may wire in:
// a logger (defaults to an error-level JSON logger on stderr if nil) and a run-history store
// (nil disables persistence entirely).
type Host struct {
	Log   *slog.Logger
	Store *store.Store
	// Now supplies the creation timestamp stamped into a saved run.
	// Callers inject it (instead of this package calling time.Now
	// itself) so the boundary function stays a deterministic wrapper
	// around the engine.
	Now func() int64
}

// RunScheduler mirrors the run_scheduler(processes[], n, algorithm_code,
// quantum, log_buffer[], max_logs) -> log_count boundary function. It
// validates processes (and, for MLQ, their
// queue assignment), runs the requested algorithm, copies metrics back
// into processes and intervals into logBuffer up to maxLogs, and returns
// the number of Gantt entries produced, or BadInput on invalid input. On
// BadInput neither slice is mutated. maxLogs is clamped to len(logBuffer)
// since the caller cannot write more than the buffer actually holds.
func (h *Host) RunScheduler(processes []process.Process, algorithmCode, quantum int, logBuffer []gantt.Entry, maxLogs int) int {
	log := h.logger()

	if maxLogs > len(logBuffer) {
		maxLogs = len(logBuffer)
	}

	algo, err := engine.ParseAlgorithmCode(algorithmCode)
	if err != nil {
		log.Warn("rejecting run: unknown algorithm code", logging.IntAttr("algorithm_code", algorithmCode))
		return BadInput
	}

	table := toTable(processes)
	if err := table.Validate(); err != nil {
		log.Warn("rejecting run: invalid process table", logging.ErrAttr(err))
		return BadInput
	}
	if algo == engine.MLQ {
		if err := table.ValidateMLQ(); err != nil {
			log.Warn("rejecting run: invalid MLQ queue assignment", logging.ErrAttr(err))
			return BadInput
		}
	}

	ganttLog, err := engine.Run(table, algo, quantum, maxLogs)
	if err != nil {
		log.Warn("rejecting run", logging.ErrAttr(err))
		return BadInput
	}

	copyBack(table, processes)
	n := copy(logBuffer, ganttLog.Entries())

	runID := xid.New().String()
	log.Info("run completed",
		logging.StringAttr("run_id", runID),
		logging.StringAttr("algorithm", algo.String()),
		logging.IntAttr("process_count", len(processes)),
		logging.IntAttr("log_count", n),
	)

	if h.Store != nil {
		created := int64(0)
		if h.Now != nil {
			created = h.Now()
		}
		run := store.Run{
			ID:          runID,
			Algorithm:   algo.String(),
			Quantum:     quantum,
			ProcessN:    len(processes),
			Makespan:    ganttLog.Makespan(),
			Overflowed:  ganttLog.Overflowed(),
			CreatedUnix: created,
		}
		if err := h.Store.SaveRun(run); err != nil {
			log.Error("failed to persist run history", logging.ErrAttr(err))
		}
	}

	return n
}

func (h *Host) logger() *slog.Logger {
	if h == nil || h.Log == nil {
		return logging.BuildLogger("error")
	}
	return h.Log
}

// toTable copies the caller's flat records into the engine's pointer-based
// process.Table, preserving input order, since the engine's tie-break
// rules fall back to earliest arrival then input order.
func toTable(processes []process.Process) process.Table {
	table := make(process.Table, len(processes))
	for i, src := range processes {
		p := process.NewProcess(src.PID, src.AT, src.BT, src.Priority)
		table[i] = p
	}
	return table
}

// copyBack writes the engine's computed fields back into the caller's
// slice by value: copy out, never alias.
func copyBack(table process.Table, processes []process.Process) {
	for i, p := range table {
		processes[i].CT = p.CT
		processes[i].TAT = p.TAT
		processes[i].WT = p.WT
		processes[i].RemTime = p.RemTime
		processes[i].FirstRun = p.FirstRun
		processes[i].CurrentPriority = p.CurrentPriority
		processes[i].CurrentQueue = p.CurrentQueue
	}
}
