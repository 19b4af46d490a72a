package eller

import "fmt"

/*
setTable indexes the live row by set id. members[id] holds the columns of set
id in the order they joined it; members[0] is never used because id 0 marks a
cell that has not been given a set yet.

A row of width w never holds more than w sets, and fresh ids are always the
smallest free ones, so every id fits in 1..w.
*/
type setTable struct {
	members [][]int
}

func newSetTable(width int) *setTable {
	return &setTable{members: make([][]int, width+1)}
}

// rebuild reindexes row from scratch and moves every unassigned cell into a
// new singleton set.
//
// panics [AssertionError]
func (t *setTable) rebuild(row []cell) {
	clear(t.members)

	for i, c := range row {
		if int(c.set) >= len(t.members) {
			panic(AssertionError{fmt.Sprintf("cell %d carries out of range set %d", i, c.set)})
		}
		if c.set != 0 {
			t.members[c.set] = append(t.members[c.set], i)
		}
	}

	/*
	 * Ids are only added below, never freed, so the smallest free id can
	 * only grow while we walk the row. One forward-moving cursor finds all
	 * of them.
	 */
	next := uint(1)
	for i := range row {
		if row[i].set != 0 {
			continue
		}
		for int(next) < len(t.members) && len(t.members[next]) != 0 {
			next++
		}
		if int(next) >= len(t.members) {
			panic(AssertionError{fmt.Sprintf("no free set id for cell %d", i)})
		}
		row[i].set = next
		t.members[next] = []int{i}
	}
}

// lookup returns the columns of set id.
//
// panics [AssertionError]
func (t *setTable) lookup(id uint) []int {
	if id == 0 || int(id) >= len(t.members) || len(t.members[id]) == 0 {
		panic(AssertionError{fmt.Sprintf("set %d has no table entry", id)})
	}
	return t.members[id]
}

// union relabels every cell of set from as a member of set into.
//
// panics [AssertionError]
func (t *setTable) union(row []cell, into, from uint) {
	t.lookup(into)
	moved := t.lookup(from)
	for _, i := range moved {
		row[i].set = into
	}
	t.members[into] = append(t.members[into], moved...)
	t.members[from] = nil
}

// openCounts snapshots, per set id, how many members still lack a bottom wall.
// Right after a rebuild that is every member.
func (t *setTable) openCounts() []int {
	open := make([]int, len(t.members))
	for id, m := range t.members {
		open[id] = len(m)
	}
	return open
}

// partitions reports whether the table covers columns 0..width-1 exactly once
// and agrees with the set ids stored in row.
func (t *setTable) partitions(row []cell) bool {
	seen := make([]bool, len(row))
	for id, m := range t.members {
		for _, i := range m {
			if i < 0 || i >= len(row) || seen[i] || row[i].set != uint(id) {
				return false
			}
			seen[i] = true
		}
	}
	for _, ok := range seen {
		if !ok {
			return false
		}
	}
	return true
}
