package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/maze-server/internal/eller"
)

func TestMazeFilterWhereClause(t *testing.T) {
	var (
		player   int64 = 3
		vertical       = eller.Vertical
	)

	tests := []struct {
		name   string
		filter MazeFilter
		clause string
		args   pgx.NamedArgs
	}{
		{
			name:   "empty",
			filter: MazeFilter{Limit: 10},
			clause: "",
			args:   pgx.NamedArgs{},
		},
		{
			name:   "player",
			filter: MazeFilter{PlayerId: &player},
			clause: "player_id = @player_id",
			args:   pgx.NamedArgs{"player_id": int64(3)},
		},
		{
			name:   "player and orientation",
			filter: MazeFilter{PlayerId: &player, Orientation: &vertical},
			clause: "player_id = @player_id AND orientation = @orientation",
			args:   pgx.NamedArgs{"player_id": int64(3), "orientation": "vertical"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clause, args := test.filter.WhereClause()
			assert.Equal(t, test.clause, clause)
			assert.Equal(t, test.args, args)
		})
	}
}

func TestMazeRecordDecode(t *testing.T) {
	p := eller.Params{Width: 6, Height: 4, Orientation: eller.Horizontal}
	seed := uint64(1) << 63
	maze, err := eller.Generate(p, eller.NewRand(seed))
	require.NoError(t, err)
	state, err := maze.Bytes()
	require.NoError(t, err)

	record := Maze{
		MazeId:      uuid.New(),
		Width:       6,
		Height:      4,
		Orientation: "horizontal",
		Seed:        int64(seed),
		State:       state,
	}

	decoded, err := record.Decode()
	require.NoError(t, err)
	assert.Equal(t, maze.String(), decoded.String())

	key, err := record.Key()
	require.NoError(t, err)
	assert.Equal(t, "6:4:h:9223372036854775808", key)

	record.Width = 7
	_, err = record.Decode()
	assert.Error(t, err)

	record.State = []byte("garbage")
	_, err = record.Decode()
	assert.Error(t, err)
}
