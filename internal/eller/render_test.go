package eller

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		maze *Maze
		want string
	}{
		{
			name: "1x1",
			maze: &Maze{Width: 1, Height: 1, Rows: [][]Cell{
				{{RightWall: true, BottomWall: true}},
			}},
			want: " ___\n" +
				"|   |\n" +
				"|___|\n",
		},
		{
			name: "3x2",
			maze: &Maze{Width: 3, Height: 2, Rows: [][]Cell{
				{{RightWall: false, BottomWall: true}, {RightWall: true, BottomWall: false}, {RightWall: true, BottomWall: false}},
				{{RightWall: false, BottomWall: true}, {RightWall: false, BottomWall: true}, {RightWall: true, BottomWall: true}},
			}},
			want: " ___ ___ ___\n" +
				"|       |   |\n" +
				"|___    |   |\n" +
				"|           |\n" +
				"|___ ___ ___|\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, test.maze.Render(&buf))
			assert.Equal(t, test.want, buf.String())
			assert.Equal(t, test.want, test.maze.String())
		})
	}
}

func TestRenderShape(t *testing.T) {
	maze, err := Generate(Params{Width: 13, Height: 8, Orientation: Horizontal}, NewRand(7))
	require.NoError(t, err)

	text := maze.String()
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 2*8+1)
	assert.Equal(t, strings.Repeat(" ___", 13), lines[0])
	for _, line := range lines[1:] {
		assert.Len(t, line, 1+4*13)
		assert.True(t, strings.HasPrefix(line, "|"))
		assert.True(t, strings.HasSuffix(line, "|"))
	}

	assert.Equal(t, text, maze.String(), "rendering twice must not differ")
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, (&Maze{}).Render(&buf), ErrEmptyMaze)
	assert.Zero(t, buf.Len())
	assert.Panics(t, func() { _ = (&Maze{}).String() })
}
