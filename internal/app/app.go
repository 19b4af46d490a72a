package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/maze-server/internal/config"
	"github.com/vancomm/maze-server/internal/database"
	"github.com/vancomm/maze-server/internal/metrics"
	"github.com/vancomm/maze-server/internal/middleware"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	log      *logrus.Logger
	router   *http.ServeMux
	db       *pgxpool.Pool
	cookies  *config.Cookies
	jwt      *config.JWT
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	maxDim   int
}

func New(log *logrus.Logger) *App {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &App{
		log:      log,
		router:   http.NewServeMux(),
		registry: registry,
		metrics:  metrics.New(registry),
	}
}

func (a *App) configure() error {
	cookies, err := config.NewCookies()
	if err != nil {
		return err
	}
	a.cookies = cookies

	jwt, err := config.NewJWT()
	if err != nil {
		return err
	}
	a.jwt = jwt

	maxDim, err := config.MaxDimension()
	if err != nil {
		return err
	}
	a.maxDim = maxDim
	return nil
}

// Start connects to the database, migrates it and serves until ctx is done.
func (a *App) Start(ctx context.Context) error {
	if err := a.configure(); err != nil {
		return err
	}

	db, migrator, err := database.ConnectAndMigrate(ctx)
	if err != nil {
		return fmt.Errorf("unable to connect to db: %w", err)
	}
	defer db.Close()
	a.db = db

	if version, dirty, err := migrator.Version(); err == nil {
		a.log.WithFields(logrus.Fields{
			"version": version, "dirty": dirty,
		}).Info("database schema ready")
	}
	migrator.Close()

	a.loadRoutes()

	addr := config.Addr()
	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(
			a.router,
			middleware.Auth(a.log, a.cookies, a.jwt),
			middleware.Logging(a.log),
			middleware.Cors(),
		),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.log.Infof("ready to serve @ %s", addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("unable to listen and serve: %w", err)
	})
	g.Go(func() error {
		<-gCtx.Done()
		a.log.Info("shutting down")
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	return g.Wait()
}
