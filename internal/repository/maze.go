package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vancomm/maze-server/internal/eller"
)

const mazeColumns = `maze_id, player_id, width, height, orientation, seed, state, created_at`

type Maze struct {
	MazeId      uuid.UUID `db:"maze_id"`
	PlayerId    *int64    `db:"player_id"`
	Width       int       `db:"width"`
	Height      int       `db:"height"`
	Orientation string    `db:"orientation"`
	Seed        int64     `db:"seed"`
	State       []byte    `db:"state"`
	CreatedAt   time.Time `db:"created_at"`
}

func (m Maze) Params() (eller.Params, error) {
	o, err := eller.ParseOrientation(m.Orientation)
	if err != nil {
		return eller.Params{}, err
	}
	return eller.Params{Width: m.Width, Height: m.Height, Orientation: o}, nil
}

// Key names the stored maze. Postgres has no unsigned 64-bit type, so the
// seed is kept as its two's complement.
func (m Maze) Key() (string, error) {
	p, err := m.Params()
	if err != nil {
		return "", err
	}
	return p.Key(uint64(m.Seed)), nil
}

// Decode restores the generated maze and checks that the stored state still
// describes a perfect maze of the recorded size.
func (m Maze) Decode() (*eller.Maze, error) {
	maze, err := eller.DecodeMaze(m.State)
	if err != nil {
		return nil, fmt.Errorf("unable to decode maze %s: %w", m.MazeId, err)
	}
	if maze.Width != m.Width || maze.Height != m.Height {
		return nil, fmt.Errorf("maze %s: state is %dx%d, record says %dx%d",
			m.MazeId, maze.Width, maze.Height, m.Width, m.Height)
	}
	if err := maze.Validate(); err != nil {
		return nil, fmt.Errorf("maze %s: %w", m.MazeId, err)
	}
	return maze, nil
}

type CreateMazeParams struct {
	PlayerId *int64
	Params   eller.Params
	Seed     uint64
	Maze     *eller.Maze
}

func (q *Queries) CreateMaze(ctx context.Context, params CreateMazeParams) (*Maze, error) {
	state, err := params.Maze.Bytes()
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO maze (
			maze_id, player_id, width, height, orientation, seed, state
		)
		VALUES (
			@maze_id, @player_id, @width, @height, @orientation, @seed, @state
		)
		RETURNING `+mazeColumns,
		pgx.NamedArgs{
			"maze_id":     id,
			"player_id":   params.PlayerId,
			"width":       params.Params.Width,
			"height":      params.Params.Height,
			"orientation": params.Params.Orientation.String(),
			"seed":        int64(params.Seed),
			"state":       state,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Maze])
}

func (q *Queries) FetchMaze(ctx context.Context, mazeId uuid.UUID) (*Maze, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT "+mazeColumns+" FROM maze WHERE maze_id = $1",
		mazeId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Maze])
}

type MazeFilter struct {
	PlayerId    *int64
	Orientation *eller.Orientation
	Limit       int
}

func (f MazeFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.PlayerId != nil {
		clauses = append(clauses, "player_id = @player_id")
		args["player_id"] = *f.PlayerId
	}
	if f.Orientation != nil {
		clauses = append(clauses, "orientation = @orientation")
		args["orientation"] = f.Orientation.String()
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) ListMazes(ctx context.Context, filter MazeFilter) ([]Maze, error) {
	query := "SELECT " + mazeColumns + " FROM maze"

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " WHERE " + whereClause
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT @limit"
		args["limit"] = filter.Limit
	}

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Maze])
}
