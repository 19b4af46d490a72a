package app

import (
	"hash/maphash"
	"math/rand/v2"
	"net/http"
	"path"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vancomm/maze-server/internal/config"
	"github.com/vancomm/maze-server/internal/handlers"
	"github.com/vancomm/maze-server/internal/repository"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func route(method, pattern string) string {
	return method + " " + path.Join("/", config.BasePath(), pattern)
}

func (a *App) loadRoutes() {
	repo := repository.New(a.db)

	maze := handlers.NewMazeHandler(
		a.log, repo, a.metrics, config.NewUpgrader(),
		handlers.NewSeedSource(createRand()), a.maxDim,
	)
	auth := handlers.NewAuth(a.log, repo, a.cookies, a.jwt)

	a.router.HandleFunc(route(http.MethodPost, "/v1/maze"), maze.NewMaze)
	a.router.HandleFunc(route(http.MethodGet, "/v1/maze/preview"), maze.Preview)
	a.router.HandleFunc(route(http.MethodGet, "/v1/maze/stream"), maze.Stream)
	a.router.HandleFunc(route(http.MethodGet, "/v1/maze/{id}"), maze.Fetch)
	a.router.HandleFunc(route(http.MethodGet, "/v1/maze/{id}/text"), maze.Text)
	a.router.HandleFunc(route(http.MethodGet, "/v1/mymazes"), maze.Mine)

	a.router.HandleFunc(route(http.MethodPost, "/v1/register"), auth.Register)
	a.router.HandleFunc(route(http.MethodPost, "/v1/login"), auth.Login)
	a.router.HandleFunc(route(http.MethodPost, "/v1/logout"), auth.Logout)
	a.router.HandleFunc(route(http.MethodGet, "/v1/status"), auth.Status)

	a.router.Handle(route(http.MethodGet, "/metrics"), promhttp.HandlerFor(
		a.registry, promhttp.HandlerOpts{Registry: a.registry},
	))
}
