package handlers

import (
	"fmt"

	"github.com/gorilla/schema"

	"github.com/vancomm/maze-server/internal/eller"
	"github.com/vancomm/maze-server/internal/repository"
)

var decoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

type MazeParamsDTO struct {
	Width       int     `schema:"width"`
	Height      int     `schema:"height"`
	Orientation string  `schema:"orientation"`
	Seed        *uint64 `schema:"seed"`
	Key         string  `schema:"key"`
}

func ParseMazeParamsDTO(src map[string][]string) (MazeParamsDTO, error) {
	var dto MazeParamsDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

// Params resolves the request into maze params and, when the request names
// one, a seed. A key takes precedence over the other fields.
func (d MazeParamsDTO) Params() (p eller.Params, seed uint64, seeded bool, err error) {
	if d.Key != "" {
		p, seed, err = eller.ParseKey(d.Key)
		return p, seed, err == nil, err
	}

	p = eller.Params{Width: d.Width, Height: d.Height}
	if d.Orientation != "" {
		if p.Orientation, err = eller.ParseOrientation(d.Orientation); err != nil {
			return eller.Params{}, 0, false, err
		}
	}
	if err = p.Validate(); err != nil {
		return eller.Params{}, 0, false, err
	}
	if d.Seed != nil {
		return p, *d.Seed, true, nil
	}
	return p, 0, false, nil
}

type MazeDTO struct {
	MazeId      string            `json:"maze_id,omitempty"`
	Key         string            `json:"key"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	Orientation eller.Orientation `json:"orientation"`
	Rows        [][]eller.Cell    `json:"rows,omitempty"`
	CreatedAt   int64             `json:"created_at,omitempty"`
}

func NewMazeDTO(record *repository.Maze, maze *eller.Maze) (*MazeDTO, error) {
	p, err := record.Params()
	if err != nil {
		return nil, err
	}
	dto := &MazeDTO{
		MazeId:      record.MazeId.String(),
		Key:         p.Key(uint64(record.Seed)),
		Width:       record.Width,
		Height:      record.Height,
		Orientation: p.Orientation,
		CreatedAt:   record.CreatedAt.UnixMilli(),
	}
	if maze != nil {
		dto.Rows = maze.Rows
	}
	return dto, nil
}

type rowMessage struct {
	Row   int          `json:"row"`
	Cells []eller.Cell `json:"cells"`
}

type doneMessage struct {
	Done bool   `json:"done"`
	Key  string `json:"key"`
}

type errorMessage struct {
	Error string `json:"error"`
}

var ErrTooLarge = fmt.Errorf("maze dimensions exceed the server limit")
