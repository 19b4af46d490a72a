package eller

import (
	"bufio"
	"io"
	"strings"
)

// Render writes m as text: a top line of " ___" per column, then two lines
// per row. Walls are drawn with '|' and "___"; missing walls are blanks.
func (m *Maze) Render(w io.Writer) error {
	if len(m.Rows) == 0 {
		return ErrEmptyMaze
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Repeat(" ___", len(m.Rows[0])))
	bw.WriteByte('\n')

	for _, row := range m.Rows {
		bw.WriteByte('|')
		for _, c := range row {
			bw.WriteString("   ")
			bw.WriteByte(rightMarker(c))
		}
		bw.WriteByte('\n')

		bw.WriteByte('|')
		for _, c := range row {
			if c.BottomWall {
				bw.WriteString("___")
			} else {
				bw.WriteString("   ")
			}
			bw.WriteByte(rightMarker(c))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func rightMarker(c Cell) byte {
	if c.RightWall {
		return '|'
	}
	return ' '
}

// String renders m. It panics on a maze without rows, which [Generate] never
// returns.
func (m *Maze) String() string {
	var b strings.Builder
	if err := m.Render(&b); err != nil {
		panic(AssertionError{"render: " + err.Error()})
	}
	return b.String()
}
