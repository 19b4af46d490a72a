package eller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowWithSets(ids ...uint) []cell {
	row := make([]cell, len(ids))
	for i, id := range ids {
		row[i].set = id
	}
	return row
}

func setsOf(row []cell) []uint {
	ids := make([]uint, len(row))
	for i, c := range row {
		ids[i] = c.set
	}
	return ids
}

func TestRebuild(t *testing.T) {
	tests := []struct {
		name string
		in   []uint
		want []uint
	}{
		{name: "fresh row", in: []uint{0, 0, 0, 0}, want: []uint{1, 2, 3, 4}},
		{name: "smallest free ids", in: []uint{0, 2, 0, 2, 5, 0}, want: []uint{1, 2, 3, 2, 5, 4}},
		{name: "fully assigned", in: []uint{3, 3, 1}, want: []uint{3, 3, 1}},
		{name: "skips taken tail", in: []uint{0, 1, 2, 0}, want: []uint{3, 1, 2, 4}},
		{name: "single cell", in: []uint{0}, want: []uint{1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			row := rowWithSets(test.in...)
			sets := newSetTable(len(row))
			sets.rebuild(row)
			assert.Equal(t, test.want, setsOf(row))
			assert.True(t, sets.partitions(row))
		})
	}
}

func TestRebuildForgetsPreviousRow(t *testing.T) {
	sets := newSetTable(3)
	sets.rebuild(rowWithSets(0, 0, 0))

	row := rowWithSets(2, 2, 0)
	sets.rebuild(row)
	assert.Equal(t, []uint{2, 2, 1}, setsOf(row))
	assert.Equal(t, []int{0, 1}, sets.lookup(2))
	assert.Equal(t, []int{2}, sets.lookup(1))
	assert.Empty(t, sets.members[3])
}

func TestUnion(t *testing.T) {
	row := rowWithSets(0, 0, 0, 0, 0)
	sets := newSetTable(len(row))
	sets.rebuild(row)

	sets.union(row, 2, 3)
	sets.union(row, 1, 2)
	assert.Equal(t, []uint{1, 1, 1, 4, 5}, setsOf(row))
	assert.Equal(t, []int{0, 1, 2}, sets.lookup(1))
	assert.True(t, sets.partitions(row))

	assert.Panics(t, func() { sets.lookup(2) })
	assert.Panics(t, func() { sets.lookup(3) })
}

func TestLookupMissingSetPanics(t *testing.T) {
	sets := newSetTable(2)
	sets.rebuild(rowWithSets(0, 0))

	for _, id := range []uint{0, 3, 100} {
		func() {
			defer func() {
				rec := recover()
				require.NotNil(t, rec, "set %d", id)
				_, ok := rec.(AssertionError)
				assert.True(t, ok, "set %d: panic value %v is not an AssertionError", id, rec)
			}()
			sets.lookup(id)
		}()
	}
}

func TestOpenCounts(t *testing.T) {
	row := rowWithSets(1, 1, 2, 1)
	sets := newSetTable(len(row))
	sets.rebuild(row)
	assert.Equal(t, []int{0, 3, 1, 0, 0}, sets.openCounts())
}

func TestPartitionsDetectsMismatch(t *testing.T) {
	row := rowWithSets(1, 2)
	sets := newSetTable(len(row))
	sets.rebuild(row)
	require.True(t, sets.partitions(row))

	row[1].set = 1
	assert.False(t, sets.partitions(row))
}
