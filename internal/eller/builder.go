package eller

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// cell is one cell of the live row. set is 0 until the cell is given a set
// at the start of a row cycle.
type cell struct {
	set           uint
	right, bottom bool
}

/*
Builder grows a maze one row at a time with Eller's algorithm. Only the live
row and its set table are kept; every finished row is handed back by Next.

A Builder owns its random source and must not be shared between goroutines.
*/
type Builder struct {
	params Params
	rnd    *rand.Rand
	row    []cell
	sets   *setTable
	y      int
}

func NewBuilder(p Params, r *rand.Rand) (*Builder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNoRandSource
	}

	row := make([]cell, p.Width)
	row[p.Width-1].right = true

	b := &Builder{
		params: p,
		rnd:    r,
		row:    row,
		sets:   newSetTable(p.Width),
	}
	return b, nil
}

func (b *Builder) Params() Params {
	return b.params
}

// Row returns the index of the row the next call to Next will produce.
func (b *Builder) Row() int {
	return b.y
}

func (b *Builder) Done() bool {
	return b.y >= b.params.Height
}

// Next runs one full row cycle and returns the finished row. It returns false
// once all rows have been produced.
//
// panics [AssertionError]
func (b *Builder) Next() ([]Cell, bool) {
	if b.Done() {
		return nil, false
	}
	b.process()
	return b.advance(), true
}

// process assigns sets and draws the random right and bottom walls of the
// live row.
func (b *Builder) process() {
	b.sets.rebuild(b.row)
	b.placeRightWalls()
	b.placeBottomWalls()
}

// advance archives the live row, closing the maze first if it is the last
// one, and prepares the next row.
func (b *Builder) advance() []Cell {
	last := b.y == b.params.Height-1
	if last {
		b.close()
	}

	out := make([]Cell, len(b.row))
	for i, c := range b.row {
		out[i] = Cell{RightWall: c.right, BottomWall: c.bottom}
	}

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"row": b.y, "last": last, "sets": b.setCount(),
		}).Debug("row done")
	}

	if !last {
		b.reset()
	}
	b.y++
	return out
}

// panics [AssertionError]
func (b *Builder) placeRightWalls() {
	row := b.row
	for i := 0; i < len(row)-1; i++ {
		left, right := row[i].set, row[i+1].set

		/*
		 * Joining two cells of one set would close a loop.
		 */
		if left == right {
			row[i].right = true
			continue
		}

		if buildWall(b.params.Orientation, true, b.rnd) {
			row[i].right = true
			continue
		}
		b.sets.union(row, left, right)
	}
}

// panics [AssertionError]
func (b *Builder) placeBottomWalls() {
	open := b.sets.openCounts()
	for i := range b.row {
		if !buildWall(b.params.Orientation, false, b.rnd) {
			continue
		}
		id := b.row[i].set
		if open[id] == 0 {
			panic(AssertionError{"bottom walls: set of cell has no table entry"})
		}

		/*
		 * The last open member of a set is its only way down; sealing it
		 * would cut the set off from the rest of the maze.
		 */
		if open[id] > 1 {
			b.row[i].bottom = true
			open[id]--
		}
	}
}

// close turns the live row into the last row of the maze: every cell gets a
// floor and every remaining pair of distinct sets is joined.
//
// panics [AssertionError]
func (b *Builder) close() {
	row := b.row
	for i := 0; i < len(row)-1; i++ {
		row[i].bottom = true
		if row[i].set != row[i+1].set {
			row[i].right = false
			b.sets.union(row, row[i].set, row[i+1].set)
		}
	}
	row[len(row)-1].bottom = true
}

// reset clears the walls of the live row. Cells that were sealed below lose
// their set and get a fresh one on the next cycle.
func (b *Builder) reset() {
	for i := range b.row {
		b.row[i].right = false
		if b.row[i].bottom {
			b.row[i].set = 0
			b.row[i].bottom = false
		}
	}
	b.row[len(b.row)-1].right = true
}

func (b *Builder) setCount() int {
	n := 0
	for _, m := range b.sets.members {
		if len(m) != 0 {
			n++
		}
	}
	return n
}

// Generate builds a whole maze. A broken invariant inside the builder is
// logged and returned as an [AssertionError].
func Generate(p Params, r *rand.Rand) (*Maze, error) {
	b, err := NewBuilder(p, r)
	if err != nil {
		return nil, err
	}
	return b.build()
}

func (b *Builder) build() (maze *Maze, err error) {
	defer b.recoverAssertion(&err)

	maze = &Maze{
		Width:  b.params.Width,
		Height: b.params.Height,
		Rows:   make([][]Cell, 0, b.params.Height),
	}
	for row, ok := b.Next(); ok; row, ok = b.Next() {
		maze.Rows = append(maze.Rows, row)
	}
	return maze, nil
}

// TryNext is Next for callers that stream rows: a broken invariant is logged
// and returned instead of raised.
func (b *Builder) TryNext() (row []Cell, ok bool, err error) {
	defer b.recoverAssertion(&err)
	row, ok = b.Next()
	return row, ok, nil
}

func (b *Builder) recoverAssertion(err *error) {
	rec := recover()
	if rec == nil {
		return
	}
	ae, ok := rec.(AssertionError)
	if !ok {
		panic(rec)
	}
	Log.WithFields(logrus.Fields{
		"params": b.params, "row": b.y,
	}).WithError(ae).Error("assertion failed")
	*err = ae
}
