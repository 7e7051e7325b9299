package bridge

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/gantt"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"
	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRunSchedulerFCFSMatchesEngine(t *testing.T) {
	processes := []process.Process{
		{PID: 1, AT: 0, BT: 5},
		{PID: 2, AT: 1, BT: 3},
		{PID: 3, AT: 2, BT: 8},
	}
	logBuffer := make([]gantt.Entry, 8)

	h := &Host{}
	n := h.RunScheduler(processes, 0, 0, logBuffer, len(logBuffer))

	require.Equal(t, 3, n)
	assert.Equal(t, []gantt.Entry{
		{PID: 1, Start: 0, Finish: 5},
		{PID: 2, Start: 5, Finish: 8},
		{PID: 3, Start: 8, Finish: 16},
	}, logBuffer[:n])
	assert.Equal(t, 5, processes[0].CT)
	assert.Equal(t, 8, processes[1].CT)
	assert.Equal(t, 16, processes[2].CT)
}

func TestRunSchedulerRejectsUnknownAlgorithm(t *testing.T) {
	processes := []process.Process{{PID: 1, AT: 0, BT: 5}}
	original := append([]process.Process{}, processes...)
	logBuffer := make([]gantt.Entry, 4)

	h := &Host{}
	n := h.RunScheduler(processes, 99, 0, logBuffer, len(logBuffer))

	assert.Equal(t, BadInput, n)
	assert.Equal(t, original, processes, "bad input must not mutate the caller's table")
}

func TestRunSchedulerRejectsDuplicatePID(t *testing.T) {
	processes := []process.Process{
		{PID: 1, AT: 0, BT: 5},
		{PID: 1, AT: 1, BT: 3},
	}
	logBuffer := make([]gantt.Entry, 4)

	h := &Host{}
	n := h.RunScheduler(processes, 0, 0, logBuffer, len(logBuffer))

	assert.Equal(t, BadInput, n)
}

func TestRunSchedulerRejectsMLQWithoutQueueAssignment(t *testing.T) {
	processes := []process.Process{
		{PID: 1, AT: 0, BT: 5, Priority: 7},
	}
	logBuffer := make([]gantt.Entry, 4)

	h := &Host{}
	n := h.RunScheduler(processes, 7, 0, logBuffer, len(logBuffer))

	assert.Equal(t, BadInput, n)
}

func TestRunSchedulerRejectsZeroQuantumForRR(t *testing.T) {
	processes := []process.Process{{PID: 1, AT: 0, BT: 5}}
	logBuffer := make([]gantt.Entry, 4)

	h := &Host{}
	n := h.RunScheduler(processes, 5, 0, logBuffer, len(logBuffer))

	assert.Equal(t, BadInput, n)
}

func TestRunSchedulerTruncatesToLogBufferCapacity(t *testing.T) {
	processes := []process.Process{
		{PID: 1, AT: 0, BT: 5},
		{PID: 2, AT: 1, BT: 3},
		{PID: 3, AT: 2, BT: 8},
	}
	logBuffer := make([]gantt.Entry, 1)

	h := &Host{}
	n := h.RunScheduler(processes, 0, 0, logBuffer, len(logBuffer))

	assert.Equal(t, 1, n)
	assert.Equal(t, gantt.Entry{PID: 1, Start: 0, Finish: 5}, logBuffer[0])
}

func TestRunSchedulerPersistsHistoryWhenStoreConfigured(t *testing.T) {
	s := newTestStore(t)
	processes := []process.Process{{PID: 1, AT: 0, BT: 4}}
	logBuffer := make([]gantt.Entry, 4)

	h := &Host{Store: s, Now: func() int64 { return 1234 }}
	n := h.RunScheduler(processes, 0, 0, logBuffer, len(logBuffer))
	require.Equal(t, 1, n)

	runs, err := s.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "FCFS", runs[0].Algorithm)
	assert.Equal(t, 4, runs[0].Makespan)
	assert.Equal(t, int64(1234), runs[0].CreatedUnix)
}
