package gantt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendCoalescesAdjacentSamePid(t *testing.T) {
	l := NewLogger(100)
	l.Append(1, 0, 2)
	l.Append(1, 2, 5)
	l.Append(2, 5, 8)

	entries := l.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, Entry{PID: 1, Start: 0, Finish: 5}, entries[0])
	assert.Equal(t, Entry{PID: 2, Start: 5, Finish: 8}, entries[1])
}

func TestAppendDoesNotCoalesceAcrossGap(t *testing.T) {
	l := NewLogger(100)
	l.Append(1, 0, 2)
	l.Append(1, 3, 5)

	assert.Len(t, l.Entries(), 2)
}

func TestIdleIntervalsCoalesce(t *testing.T) {
	l := NewLogger(100)
	l.Append(-1, 0, 1)
	l.Append(-1, 1, 2)
	l.Append(-1, 2, 5)

	entries := l.Entries()
	assert.Len(t, entries, 1)
	assert.Equal(t, Entry{PID: -1, Start: 0, Finish: 5}, entries[0])
}

func TestOverflowTruncatesAndFlags(t *testing.T) {
	l := NewLogger(2)
	l.Append(1, 0, 1)
	l.Append(2, 1, 2)
	l.Append(3, 2, 3)

	assert.Len(t, l.Entries(), 2)
	assert.True(t, l.Overflowed())
}

func TestNonIdleDuration(t *testing.T) {
	l := NewLogger(100)
	l.Append(-1, 0, 5)
	l.Append(1, 5, 8)

	assert.Equal(t, 3, l.NonIdleDuration())
	assert.Equal(t, 8, l.Makespan())
}
