package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/eller"
	"github.com/vancomm/maze-server/internal/metrics"
	"github.com/vancomm/maze-server/internal/middleware"
	"github.com/vancomm/maze-server/internal/repository"
)

const myMazesLimit = 100

type MazeStore interface {
	CreateMaze(ctx context.Context, params repository.CreateMazeParams) (*repository.Maze, error)
	FetchMaze(ctx context.Context, mazeId uuid.UUID) (*repository.Maze, error)
	ListMazes(ctx context.Context, filter repository.MazeFilter) ([]repository.Maze, error)
}

type MazeHandler struct {
	log          logrus.FieldLogger
	store        MazeStore
	metrics      *metrics.Metrics
	upgrader     *websocket.Upgrader
	seeds        *SeedSource
	maxDimension int
}

func NewMazeHandler(
	log logrus.FieldLogger,
	store MazeStore,
	m *metrics.Metrics,
	upgrader *websocket.Upgrader,
	seeds *SeedSource,
	maxDimension int,
) *MazeHandler {
	return &MazeHandler{
		log:          log,
		store:        store,
		metrics:      m,
		upgrader:     upgrader,
		seeds:        seeds,
		maxDimension: maxDimension,
	}
}

// parseParams reads maze params from the query string and picks a seed when
// the request carries none.
func (h MazeHandler) parseParams(r *http.Request) (eller.Params, uint64, error) {
	dto, err := ParseMazeParamsDTO(r.URL.Query())
	if err != nil {
		return eller.Params{}, 0, err
	}
	p, seed, seeded, err := dto.Params()
	if err != nil {
		return eller.Params{}, 0, err
	}
	if p.Width > h.maxDimension || p.Height > h.maxDimension {
		return eller.Params{}, 0, fmt.Errorf("%w (max = %d)", ErrTooLarge, h.maxDimension)
	}
	if !seeded {
		seed = h.seeds.Next()
	}
	return p, seed, nil
}

func (h MazeHandler) generate(p eller.Params, seed uint64) (*eller.Maze, error) {
	start := time.Now()
	maze, err := eller.Generate(p, eller.NewRand(seed))
	if err != nil {
		return nil, err
	}
	h.metrics.Observe(p, time.Since(start))
	return maze, nil
}

func (h MazeHandler) NewMaze(w http.ResponseWriter, r *http.Request) {
	p, seed, err := h.parseParams(r)
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	maze, err := h.generate(p, seed)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to generate a maze")
		return
	}

	params := repository.CreateMazeParams{Params: p, Seed: seed, Maze: maze}
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		params.PlayerId = &claims.PlayerId
	}
	record, err := h.store.CreateMaze(r.Context(), params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to save maze")
		return
	}

	dto, err := NewMazeDTO(record, maze)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("db returned invalid maze")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		h.log.WithError(err).Error("unable to send response")
	}
}

// fetch loads the maze named by the {id} path value. It writes the error
// response itself and returns false when the maze cannot be served.
func (h MazeHandler) fetch(w http.ResponseWriter, r *http.Request) (*repository.Maze, *eller.Maze, bool) {
	mazeId, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return nil, nil, false
	}

	record, err := h.store.FetchMaze(r.Context(), mazeId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to fetch maze from db")
		return nil, nil, false
	}

	maze, err := record.Decode()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("db returned invalid maze.state")
		return nil, nil, false
	}
	return record, maze, true
}

func (h MazeHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	record, maze, ok := h.fetch(w, r)
	if !ok {
		return
	}
	dto, err := NewMazeDTO(record, maze)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("db returned invalid maze")
		return
	}
	sendJSONOrLog(w, h.log, dto)
}

func (h MazeHandler) Text(w http.ResponseWriter, r *http.Request) {
	_, maze, ok := h.fetch(w, r)
	if !ok {
		return
	}
	h.sendText(w, maze)
}

// Preview renders a maze without saving it.
func (h MazeHandler) Preview(w http.ResponseWriter, r *http.Request) {
	p, seed, err := h.parseParams(r)
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}
	maze, err := h.generate(p, seed)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to generate a maze")
		return
	}
	w.Header().Set("X-Maze-Key", p.Key(seed))
	h.sendText(w, maze)
}

func (h MazeHandler) sendText(w http.ResponseWriter, maze *eller.Maze) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := maze.Render(w); err != nil {
		h.log.WithError(err).Error("unable to render maze")
	}
}

// Mine lists the mazes of the logged in player, newest first.
func (h MazeHandler) Mine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PlayerClaims(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	records, err := h.store.ListMazes(r.Context(), repository.MazeFilter{
		PlayerId: &claims.PlayerId,
		Limit:    myMazesLimit,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to list mazes")
		return
	}

	dtos := make([]*MazeDTO, 0, len(records))
	for i := range records {
		dto, err := NewMazeDTO(&records[i], nil)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			h.log.WithError(err).Error("db returned invalid maze")
			return
		}
		dtos = append(dtos, dto)
	}
	sendJSONOrLog(w, h.log, dtos)
}

// Stream sends the maze over a websocket one row at a time, as the rows
// come out of the builder.
func (h MazeHandler) Stream(w http.ResponseWriter, r *http.Request) {
	p, seed, err := h.parseParams(r)
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}
	b, err := eller.NewBuilder(p, eller.NewRand(seed))
	if err != nil {
		sendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("unable to upgrade connection")
		return
	}
	defer conn.Close()

	log := h.log.WithField("key", p.Key(seed))
	start := time.Now()
	for {
		y := b.Row()
		cells, ok, err := b.TryNext()
		if err != nil {
			log.WithError(err).Error("unable to generate a maze")
			conn.WriteJSON(errorMessage{Error: "internal error"})
			return
		}
		if !ok {
			break
		}
		if err := conn.WriteJSON(rowMessage{Row: y, Cells: cells}); err != nil {
			log.WithError(err).Debug("client went away")
			return
		}
	}
	h.metrics.Observe(p, time.Since(start))

	if err := conn.WriteJSON(doneMessage{Done: true, Key: p.Key(seed)}); err != nil {
		log.WithError(err).Debug("client went away")
		return
	}
	conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
}
