package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessInitializesBookkeeping(t *testing.T) {
	p := NewProcess(1, 0, 5, 3)

	assert.Equal(t, 5, p.RemTime)
	assert.Equal(t, -1, p.FirstRun)
	assert.Equal(t, 3, p.BasePriority)
	assert.Equal(t, 3, p.CurrentPriority)
	assert.Equal(t, -1, p.CurrentQueue)
	assert.Equal(t, -1, p.LastQ3Entry)
}

func TestReady(t *testing.T) {
	p := NewProcess(1, 5, 3, 0)

	assert.False(t, p.Ready(4), "not yet arrived")
	assert.True(t, p.Ready(5))
	p.RemTime = 0
	assert.False(t, p.Ready(5), "completed processes are not ready")
}

func TestDispatchOnlySetsFirstRunOnce(t *testing.T) {
	p := NewProcess(1, 0, 5, 0)
	p.Dispatch(2)
	p.Dispatch(9)
	assert.Equal(t, 2, p.FirstRun)
	assert.Equal(t, 2, p.ResponseTime())
}

func TestFinishComputesCtTatWt(t *testing.T) {
	p := NewProcess(1, 2, 5, 0)
	p.RemTime = 0
	p.Finish(10)

	assert.Equal(t, 10, p.CT)
	assert.Equal(t, 8, p.TAT)
	assert.Equal(t, 3, p.WT)
}

func TestValidateRejectsBadInput(t *testing.T) {
	tbl := Table{NewProcess(1, 0, 5, 0), NewProcess(1, 1, 3, 0)}
	require.Error(t, tbl.Validate(), "duplicate pid")

	tbl = Table{NewProcess(-1, 0, 5, 0)}
	require.Error(t, tbl.Validate(), "pid -1 reserved for idle")

	tbl = Table{NewProcess(1, -1, 5, 0)}
	require.Error(t, tbl.Validate(), "negative arrival time")

	tbl = Table{NewProcess(1, 0, 0, 0)}
	require.Error(t, tbl.Validate(), "non-positive burst time")

	tbl = Table{NewProcess(1, 0, 5, 0)}
	require.NoError(t, tbl.Validate())
}

func TestValidateMLQRejectsBadQueue(t *testing.T) {
	tbl := Table{NewProcess(1, 0, 5, 4)}
	assert.Error(t, tbl.ValidateMLQ())

	tbl = Table{NewProcess(1, 0, 5, 1), NewProcess(2, 0, 5, 3)}
	assert.NoError(t, tbl.ValidateMLQ())
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	tbl := Table{NewProcess(1, 0, 5, 0)}
	snap := tbl.Snapshot()
	snap[0].RemTime = 0

	assert.Equal(t, 5, tbl[0].RemTime, "mutating the snapshot must not affect the original")
}
