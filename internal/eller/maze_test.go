package eller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid builds a maze from wall flags: r means right wall, b bottom wall,
// rb both, and an empty string neither.
func grid(rows ...[]string) *Maze {
	m := &Maze{Height: len(rows)}
	for _, row := range rows {
		cells := make([]Cell, len(row))
		for i, w := range row {
			for _, c := range w {
				switch c {
				case 'r':
					cells[i].RightWall = true
				case 'b':
					cells[i].BottomWall = true
				}
			}
		}
		m.Width = len(cells)
		m.Rows = append(m.Rows, cells)
	}
	return m
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		maze *Maze
		err  error
	}{
		{
			name: "perfect",
			maze: grid(
				[]string{"b", "r"},
				[]string{"b", "rb"},
			),
		},
		{
			name: "loop",
			maze: grid(
				[]string{"", "r"},
				[]string{"b", "rb"},
			),
			err: ErrNotPerfect,
		},
		{
			name: "walled off cell",
			maze: grid(
				[]string{"rb", "r"},
				[]string{"b", "rb"},
			),
			err: ErrNotPerfect,
		},
		{
			name: "open right side",
			maze: grid(
				[]string{"b", ""},
				[]string{"b", "rb"},
			),
			err: ErrMalformed,
		},
		{
			name: "open floor",
			maze: grid(
				[]string{"b", "r"},
				[]string{"b", "r"},
			),
			err: ErrMalformed,
		},
		{
			name: "ragged",
			maze: grid(
				[]string{"b", "r"},
				[]string{"rb"},
			),
			err: ErrMalformed,
		},
		{
			name: "empty",
			maze: &Maze{},
			err:  ErrEmptyMaze,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.maze.Validate()
			if test.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.err)
			}
		})
	}
}

func TestReachable(t *testing.T) {
	m := grid(
		[]string{"rb", "b", "r"},
		[]string{"b", "b", "rb"},
	)
	assert.Equal(t, 1, m.Reachable(0, 0))
	assert.Equal(t, 5, m.Reachable(2, 1))
	assert.Equal(t, 0, m.Reachable(3, 0))
	assert.Equal(t, 0, m.Reachable(0, -1))
	assert.Equal(t, 4, m.Passages())
}

func TestDecodeMaze(t *testing.T) {
	maze, err := Generate(Params{Width: 11, Height: 4, Orientation: Vertical}, NewRand(3))
	require.NoError(t, err)

	b, err := maze.Bytes()
	require.NoError(t, err)
	decoded, err := DecodeMaze(b)
	require.NoError(t, err)
	assert.Equal(t, maze, decoded)
	assert.NoError(t, decoded.Validate())

	_, err = DecodeMaze([]byte("not a maze"))
	assert.Error(t, err)
}
