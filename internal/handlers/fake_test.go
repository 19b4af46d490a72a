package handlers

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vancomm/maze-server/internal/repository"
)

// fakeStore keeps mazes and players in memory and fails the way Postgres
// does for missing rows and duplicate usernames.
type fakeStore struct {
	mu         sync.Mutex
	mazes      []repository.Maze
	players    map[string]repository.Player
	nextPlayer int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{players: make(map[string]repository.Player)}
}

func (s *fakeStore) CreateMaze(_ context.Context, params repository.CreateMazeParams) (*repository.Maze, error) {
	state, err := params.Maze.Bytes()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	record := repository.Maze{
		MazeId:      uuid.New(),
		PlayerId:    params.PlayerId,
		Width:       params.Params.Width,
		Height:      params.Params.Height,
		Orientation: params.Params.Orientation.String(),
		Seed:        int64(params.Seed),
		State:       state,
		CreatedAt:   time.Now(),
	}
	s.mazes = append(s.mazes, record)
	return &record, nil
}

func (s *fakeStore) FetchMaze(_ context.Context, mazeId uuid.UUID) (*repository.Maze, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.mazes {
		if m.MazeId == mazeId {
			return &m, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeStore) ListMazes(_ context.Context, filter repository.MazeFilter) ([]repository.Maze, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]repository.Maze, 0)
	for _, m := range slices.Backward(s.mazes) {
		if filter.PlayerId != nil && (m.PlayerId == nil || *m.PlayerId != *filter.PlayerId) {
			continue
		}
		if filter.Orientation != nil && m.Orientation != filter.Orientation.String() {
			continue
		}
		out = append(out, m)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (s *fakeStore) CreatePlayer(_ context.Context, params repository.CreatePlayerParams) (*repository.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[params.Username]; ok {
		return nil, &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	}
	s.nextPlayer++
	player := repository.Player{
		PlayerId:     s.nextPlayer,
		Username:     params.Username,
		PasswordHash: params.PasswordHash,
		CreatedAt:    time.Now(),
	}
	s.players[params.Username] = player
	return &player, nil
}

func (s *fakeStore) FetchPlayer(_ context.Context, username string) (*repository.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	player, ok := s.players[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &player, nil
}
