package engine

import (
	"testing"

	"github.com/KAMRANkami313/Hybrid-OS-Scheduler-Pro/internal/process"
	"github.com/stretchr/testify/assert"
)

func TestRunTimeNonPreemptiveRunsToCompletion(t *testing.T) {
	table := process.Table{
		process.NewProcess(1, 0, 7, 0),
		process.NewProcess(2, 1, 1, 0),
	}
	for _, algo := range []Algorithm{FCFS, SJF, PrioNP} {
		assert.Equal(t, 7, RunTime(algo, table, 0, 0), "algorithm %v", algo)
	}
}

func TestSRTFRunTimeClampsToShorterArrival(t *testing.T) {
	table := process.Table{
		process.NewProcess(1, 0, 10, 0),
		process.NewProcess(2, 3, 2, 0),
	}
	assert.Equal(t, 3, RunTime(SRTF, table, 0, 0))
}

func TestSRTFRunTimeIgnoresLongerArrival(t *testing.T) {
	table := process.Table{
		process.NewProcess(1, 0, 5, 0),
		process.NewProcess(2, 2, 10, 0),
	}
	assert.Equal(t, 5, RunTime(SRTF, table, 0, 0))
}

func TestPrioPClampsToOneWhenReadyProcessOvertakes(t *testing.T) {
	table := process.Table{
		process.NewProcess(1, 0, 10, 5),
		process.NewProcess(2, 0, 3, 5),
	}
	table[1].CurrentPriority = 1 // aged below the running process
	assert.Equal(t, 1, RunTime(PrioP, table, 0, 3))
}

func TestPrioPRunsToFutureArrivalOfHigherPriority(t *testing.T) {
	table := process.Table{
		process.NewProcess(1, 0, 10, 5),
		process.NewProcess(2, 4, 3, 1),
	}
	assert.Equal(t, 4, RunTime(PrioP, table, 0, 0))
}
