package eller

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Cell is a finished maze cell. The left and top sides of a cell are the
// right wall of its left neighbour and the bottom wall of the cell above;
// the outer left and top boundaries are implied.
type Cell struct {
	RightWall  bool `json:"right_wall"`
	BottomWall bool `json:"bottom_wall"`
}

// Maze holds finished rows from top to bottom. It is never modified after
// generation.
type Maze struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   [][]Cell `json:"rows"`
}

func DecodeMaze(buf []byte) (*Maze, error) {
	var maze Maze
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&maze)
	if err != nil {
		return nil, err
	}
	return &maze, nil
}

func (m *Maze) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(m)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Passages counts the interior boundaries without a wall.
func (m *Maze) Passages() int {
	n := 0
	for y, row := range m.Rows {
		for x, c := range row {
			if x < len(row)-1 && !c.RightWall {
				n++
			}
			if y < len(m.Rows)-1 && !c.BottomWall {
				n++
			}
		}
	}
	return n
}

// Reachable counts the cells that can be reached from (x, y) without crossing
// a wall, the starting cell included.
func (m *Maze) Reachable(x, y int) int {
	if y < 0 || y >= len(m.Rows) || x < 0 || x >= len(m.Rows[y]) {
		return 0
	}

	type point struct{ x, y int }
	visited := make(map[point]bool, m.Width*m.Height)
	queue := []point{{x, y}}
	visited[point{x, y}] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		row := m.Rows[p.y]

		var next []point
		if p.x+1 < len(row) && !row[p.x].RightWall {
			next = append(next, point{p.x + 1, p.y})
		}
		if p.x > 0 && !row[p.x-1].RightWall {
			next = append(next, point{p.x - 1, p.y})
		}
		if p.y+1 < len(m.Rows) && !row[p.x].BottomWall {
			next = append(next, point{p.x, p.y + 1})
		}
		if p.y > 0 && !m.Rows[p.y-1][p.x].BottomWall {
			next = append(next, point{p.x, p.y - 1})
		}

		for _, n := range next {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

// Validate checks that m is a well-formed perfect maze: rectangular, closed
// on the right and at the bottom, connected, and free of loops.
func (m *Maze) Validate() error {
	if len(m.Rows) == 0 {
		return ErrEmptyMaze
	}
	if m.Width < 1 || m.Height != len(m.Rows) {
		return fmt.Errorf("%w: %dx%d maze has %d rows",
			ErrMalformed, m.Width, m.Height, len(m.Rows))
	}
	for y, row := range m.Rows {
		if len(row) != m.Width {
			return fmt.Errorf("%w: row %d has %d cells, want %d",
				ErrMalformed, y, len(row), m.Width)
		}
		if !row[m.Width-1].RightWall {
			return fmt.Errorf("%w: row %d is open on the right", ErrMalformed, y)
		}
	}
	for x, c := range m.Rows[m.Height-1] {
		if !c.BottomWall {
			return fmt.Errorf("%w: column %d is open at the bottom", ErrMalformed, x)
		}
	}

	/*
	 * A connected graph on n nodes with exactly n-1 edges is a tree, so
	 * the two checks together rule out loops.
	 */
	cells := m.Width * m.Height
	if n := m.Passages(); n != cells-1 {
		return fmt.Errorf("%w: %d passages between %d cells", ErrNotPerfect, n, cells)
	}
	if n := m.Reachable(0, 0); n != cells {
		return fmt.Errorf("%w: %d of %d cells reachable", ErrNotPerfect, n, cells)
	}
	return nil
}
