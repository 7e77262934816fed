package logging

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	root := NewMockLogger()
	errBoom := errors.New("boom")

	root.WithField(FieldTable, "Deposits").Warn("orphan line", Field{Key: FieldLine, Value: 12})
	root.WithError(errBoom).Error("failed")
	root.Info("done")

	entries := root.GetEntries()
	require.Len(t, entries, 3)

	table, ok := entries[0].Field(FieldTable)
	require.True(t, ok)
	assert.Equal(t, "Deposits", table)
	line, _ := entries[0].Field(FieldLine)
	assert.Equal(t, 12, line)

	assert.Equal(t, errBoom, entries[1].Error)
	assert.True(t, root.HasEntry("INFO", "done"))
	assert.Len(t, root.GetEntriesByLevel("WARN"), 1)
}

func TestMockLogger_FieldsDoNotLeakBetweenSiblings(t *testing.T) {
	root := NewMockLogger()
	a := root.WithField("a", 1)
	b := root.WithField("b", 2)

	a.Info("from a")
	b.Info("from b")

	entries := root.GetEntries()
	require.Len(t, entries, 2)
	_, hasB := entries[0].Field("b")
	assert.False(t, hasB)
	_, hasA := entries[1].Field("a")
	assert.False(t, hasA)
}

func TestMockLogger_ZeroValueAndClear(t *testing.T) {
	var m MockLogger
	m.Debug("debug")
	m.WithError(errors.New("boom")).Error("failed")

	assert.True(t, m.HasEntry("ERROR", "failed"))
	assert.EqualError(t, m.GetEntriesByLevel("ERROR")[0].Error, "boom")
	m.Clear()
	assert.Empty(t, m.GetEntries())
}

func TestMockLogger_ConcurrentUse(t *testing.T) {
	root := NewMockLogger()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			root.WithField(FieldCount, i).Info("tick")
		}(i)
	}
	wg.Wait()
	assert.Len(t, root.GetEntries(), 20)
}

func TestMockLogger_ImplementsInterface(t *testing.T) {
	var _ Logger = (*MockLogger)(nil)
}
